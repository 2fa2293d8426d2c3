// Package entity defines the domain models for the stocks feature.
package entity

import "time"

// Quote is the raw snapshot returned by a market data provider for one
// symbol. Change fields are computed by the usecase, not the provider.
type Quote struct {
	Symbol           string
	Name             string
	CurrentPrice     float64
	PreviousClose    float64
	High             float64
	Low              float64
	Volume           int64
	MarketCap        float64
	PERatio          float64
	DividendYield    float64
	Beta             float64
	FiftyTwoWeekHigh float64
	FiftyTwoWeekLow  float64
	AvgVolume        int64
	Currency         string
	Exchange         string
	Sector           string
	Industry         string
}

// StockInfo is a normalized quote snapshot with derived change fields.
// Field names follow the JSON contract expected by the frontend.
type StockInfo struct {
	Symbol           string  `json:"symbol"`
	Name             string  `json:"name"`
	CurrentPrice     float64 `json:"currentPrice"`
	PreviousClose    float64 `json:"previousClose"`
	Change           float64 `json:"change"`
	ChangePercent    float64 `json:"changePercent"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	Volume           int64   `json:"volume"`
	MarketCap        float64 `json:"marketCap"`
	PERatio          float64 `json:"peRatio"`
	DividendYield    float64 `json:"dividendYield"`
	Beta             float64 `json:"beta"`
	FiftyTwoWeekHigh float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow  float64 `json:"fiftyTwoWeekLow"`
	AvgVolume        int64   `json:"avgVolume"`
	Currency         string  `json:"currency"`
	Exchange         string  `json:"exchange"`
	Sector           string  `json:"sector"`
	Industry         string  `json:"industry"`
}

// ChartPoint is one OHLCV bar of a price series.
type ChartPoint struct {
	Time   time.Time `json:"timestamp"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// ChartData is a price series for one symbol at one period/interval.
type ChartData struct {
	Symbol   string       `json:"symbol"`
	Period   string       `json:"period"`
	Interval string       `json:"interval"`
	Data     []ChartPoint `json:"data"`
}

// Suggestion is a single search result candidate.
type Suggestion struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Type     string `json:"type"`
	Country  string `json:"country"`
}

// FinancialData holds one period of financial statement figures.
type FinancialData struct {
	Symbol          string  `json:"symbol"`
	Period          string  `json:"period"`
	Revenue         float64 `json:"revenue"`
	NetIncome       float64 `json:"netIncome"`
	OperatingIncome float64 `json:"operatingIncome"`
}

// DividendData is a single dividend payment.
type DividendData struct {
	Symbol string    `json:"symbol"`
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
	Type   string    `json:"type"`
}

// RankedStock is an entry of a market-cap ranked listing.
type RankedStock struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	MarketCap     float64 `json:"marketCap"`
	Volume        int64   `json:"volume"`
}

// CompanyProfile describes a company, with the business summary carried in
// both the original language and a Korean translation.
type CompanyProfile struct {
	Symbol              string  `json:"symbol"`
	Name                string  `json:"name"`
	Sector              string  `json:"sector"`
	Industry            string  `json:"industry"`
	Country             string  `json:"country"`
	Website             string  `json:"website"`
	Description         string  `json:"description"`
	OriginalDescription string  `json:"originalDescription"`
	Employees           int64   `json:"employees"`
	MarketCap           float64 `json:"marketCap"`
}
