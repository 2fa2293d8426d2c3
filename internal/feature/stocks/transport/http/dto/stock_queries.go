// Package dto defines request bindings for the stocks HTTP endpoints.
package dto

// SearchQuery binds the stock search parameters.
type SearchQuery struct {
	Query string `form:"query" binding:"required,min=1,max=100"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=50"`
}

// ChartQuery binds the chart parameters. Unknown values fall back to
// defaults in the usecase, so no oneof constraint here.
type ChartQuery struct {
	Period    string `form:"period"`
	Interval  string `form:"interval"`
	ChartType string `form:"chart_type" binding:"omitempty,oneof=line candlestick"`
}

// DividendsQuery binds the dividend history lookback.
type DividendsQuery struct {
	Years int `form:"years" binding:"omitempty,min=1,max=10"`
}

// CompareQuery binds the comma-separated symbol list for comparison.
type CompareQuery struct {
	Symbols string `form:"symbols" binding:"required"`
}
