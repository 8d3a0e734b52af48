package models

// FundamentalProfile is a point-in-time snapshot of one symbol's
// fundamentals as supplied by the provider. Fields the provider omits are
// left at zero; scoring deliberately treats missing and zero the same
// (a zero forward P/E scores no points, it is not flagged as bad data).
type FundamentalProfile struct {
	Symbol          string  `json:"symbol"`
	CompanyName     string  `json:"company_name"`
	Sector          string  `json:"sector,omitempty"`
	Industry        string  `json:"industry,omitempty"`
	MarketCap       float64 `json:"market_cap"`
	ForwardPE       float64 `json:"forward_pe"`
	PriceToBook     float64 `json:"price_to_book"`
	DebtToEquity    float64 `json:"debt_to_equity"`
	ProfitMargin    float64 `json:"profit_margin"`
	DividendYield   float64 `json:"dividend_yield,omitempty"`
	Beta            float64 `json:"beta,omitempty"`
	BusinessSummary string  `json:"business_summary,omitempty"`
}

// ScreeningResult is the scored outcome for one profile. Metrics echo the
// unformatted inputs; presentation formats them for display.
type ScreeningResult struct {
	Symbol       string  `json:"symbol"`
	CompanyName  string  `json:"company_name"`
	MarketCap    float64 `json:"market_cap"`
	ForwardPE    float64 `json:"forward_pe"`
	PriceToBook  float64 `json:"price_to_book"`
	DebtToEquity float64 `json:"debt_to_equity"`
	ProfitMargin float64 `json:"profit_margin"`
	Score        int     `json:"score"` // 0..100
}
