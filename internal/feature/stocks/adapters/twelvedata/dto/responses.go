// Package dto defines data transfer objects for the Twelve Data API responses.
package dto

// APIError is the error shape embedded in every Twelve Data response.
// A successful response carries status "ok" (or no status at all).
type APIError struct {
	Status  string `json:"status"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// QuoteResponse represents the JSON response from the /quote endpoint.
// Numeric fields arrive as strings and are parsed by the client.
type QuoteResponse struct {
	APIError
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Exchange      string `json:"exchange"`
	Currency      string `json:"currency"`
	Close         string `json:"close"`
	PreviousClose string `json:"previous_close"`
	High          string `json:"high"`
	Low           string `json:"low"`
	Volume        string `json:"volume"`
	AverageVolume string `json:"average_volume"`
	MarketCap     string `json:"market_cap"`
	PERatio       string `json:"pe"`
	DividendYield string `json:"dividend_yield"`
	Beta          string `json:"beta"`
	FiftyTwoWeek  struct {
		High string `json:"high"`
		Low  string `json:"low"`
	} `json:"fifty_two_week"`
	Sector   string `json:"sector"`
	Industry string `json:"industry"`
}

// TimeSeriesResponse represents the JSON response from the /time_series endpoint.
type TimeSeriesResponse struct {
	APIError
	Symbol   string `json:"symbol"`
	Interval string `json:"interval"`
	Values   []struct {
		Datetime string `json:"datetime"`
		Open     string `json:"open"`
		High     string `json:"high"`
		Low      string `json:"low"`
		Close    string `json:"close"`
		Volume   string `json:"volume"`
	} `json:"values"`
}

// DividendsResponse represents the JSON response from the /dividends endpoint.
type DividendsResponse struct {
	APIError
	Symbol    string `json:"symbol"`
	Dividends []struct {
		ExDate string  `json:"ex_date"`
		Amount float64 `json:"amount"`
	} `json:"dividends"`
}

// IncomeStatementResponse represents the JSON response from the
// /income_statement endpoint. Statements are ordered latest first.
type IncomeStatementResponse struct {
	APIError
	IncomeStatement []struct {
		FiscalDate      string  `json:"fiscal_date"`
		Sales           float64 `json:"sales"`
		OperatingIncome float64 `json:"operating_income"`
		NetIncome       float64 `json:"net_income"`
	} `json:"income_statement"`
}

// ProfileResponse represents the JSON response from the /profile endpoint.
type ProfileResponse struct {
	APIError
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Sector      string `json:"sector"`
	Industry    string `json:"industry"`
	Country     string `json:"country"`
	Website     string `json:"website"`
	Description string `json:"description"`
	Employees   int64  `json:"employees"`
}
