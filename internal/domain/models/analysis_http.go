package models

// Requests for the dashboard HTTP endpoints. Defined in domain for
// consistency and reuse.

type AnalyzeRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required,max=12"`
	Period string `query:"period" json:"period" default:"1y" validate:"oneof=1d 5d 1mo 3mo 6mo 1y 2y 5y 10y ytd max"`
	News   bool   `query:"news" json:"news" default:"false"`
}

type HistoryRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required,max=12"`
	Period string `query:"period" json:"period" default:"1y" validate:"oneof=1d 5d 1mo 3mo 6mo 1y 2y 5y 10y ytd max"`
}

type ScreenRequest struct {
	Tickers []string `query:"tickers" json:"tickers" validate:"max=50,dive,max=12"`
	Limit   int      `query:"limit" json:"limit" default:"20" validate:"gte=1,lte=50"`
}

type NewsRequest struct {
	Symbol    string `query:"symbol" json:"symbol" validate:"required,max=12"`
	Limit     int    `query:"limit" json:"limit" default:"5" validate:"gte=1,lte=10"`
	Summarize bool   `query:"summarize" json:"summarize" default:"false"`
}
