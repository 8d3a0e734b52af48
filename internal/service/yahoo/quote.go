package yahoo

import "StockSight/internal/domain/models"

// rawValue is Yahoo's {"raw": 2.5e12, "fmt": "2.5T"} number wrapper.
// Missing fields decode to a zero raw value.
type rawValue struct {
	Raw float64 `json:"raw"`
}

// quoteSummaryResponse mirrors the v10 quoteSummary payload for the
// modules the screener and report need.
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			Price *struct {
				ShortName string `json:"shortName"`
				LongName  string `json:"longName"`
			} `json:"price"`
			SummaryProfile *struct {
				Sector          string `json:"sector"`
				Industry        string `json:"industry"`
				BusinessSummary string `json:"longBusinessSummary"`
			} `json:"summaryProfile"`
			SummaryDetail *struct {
				MarketCap     rawValue `json:"marketCap"`
				ForwardPE     rawValue `json:"forwardPE"`
				DividendYield rawValue `json:"dividendYield"`
				Beta          rawValue `json:"beta"`
			} `json:"summaryDetail"`
			DefaultKeyStatistics *struct {
				PriceToBook rawValue `json:"priceToBook"`
			} `json:"defaultKeyStatistics"`
			FinancialData *struct {
				DebtToEquity  rawValue `json:"debtToEquity"`
				ProfitMargins rawValue `json:"profitMargins"`
			} `json:"financialData"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// parseQuoteSummary flattens the module payload into a FundamentalProfile.
// Absent modules and fields stay zero; scoring treats them as missing.
func parseQuoteSummary(resp *quoteSummaryResponse, symbol string) (*models.FundamentalProfile, error) {
	if resp.QuoteSummary.Error != nil {
		return nil, models.NewDataError("yahoo.quoteSummary", resp.QuoteSummary.Error.Description)
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, models.NewDataError("yahoo.quoteSummary", "no result for "+symbol)
	}

	r := resp.QuoteSummary.Result[0]
	profile := &models.FundamentalProfile{Symbol: symbol}

	if r.Price != nil {
		profile.CompanyName = r.Price.LongName
		if profile.CompanyName == "" {
			profile.CompanyName = r.Price.ShortName
		}
	}
	if r.SummaryProfile != nil {
		profile.Sector = r.SummaryProfile.Sector
		profile.Industry = r.SummaryProfile.Industry
		profile.BusinessSummary = r.SummaryProfile.BusinessSummary
	}
	if r.SummaryDetail != nil {
		profile.MarketCap = r.SummaryDetail.MarketCap.Raw
		profile.ForwardPE = r.SummaryDetail.ForwardPE.Raw
		profile.DividendYield = r.SummaryDetail.DividendYield.Raw
		profile.Beta = r.SummaryDetail.Beta.Raw
	}
	if r.DefaultKeyStatistics != nil {
		profile.PriceToBook = r.DefaultKeyStatistics.PriceToBook.Raw
	}
	if r.FinancialData != nil {
		// debtToEquity arrives as a percentage (150.2 means 1.502x); the
		// screener thresholds expect that same unit.
		profile.DebtToEquity = r.FinancialData.DebtToEquity.Raw
		profile.ProfitMargin = r.FinancialData.ProfitMargins.Raw
	}

	return profile, nil
}
