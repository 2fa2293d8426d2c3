// Package handler provides the HTTP handlers for the stocks feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/api"
	"stock_dashboard/internal/feature/stocks/domain"
	"stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/feature/stocks/transport/http/dto"
	"stock_dashboard/internal/feature/stocks/usecase"
)

// StocksUsecase defines the usecase operations the handlers depend on.
// Following Go convention, the interface is defined on the consumer side.
type StocksUsecase interface {
	GetStockInfo(ctx context.Context, symbol string) (*entity.StockInfo, error)
	GetStockChart(ctx context.Context, symbol, period, interval string) (*entity.ChartData, error)
	SearchStocks(ctx context.Context, query string, limit int) ([]entity.Suggestion, error)
	GetPopularStocks(ctx context.Context) ([]entity.StockInfo, error)
	GetFinancialData(ctx context.Context, symbol string) (*entity.FinancialData, error)
	GetDividendHistory(ctx context.Context, symbol string, years int) ([]entity.DividendData, error)
	CompareStocks(ctx context.Context, symbols []string) ([]entity.StockInfo, error)
	GetCompanyDescription(ctx context.Context, symbol string) (*entity.CompanyProfile, error)
	GetTopMarketCapStocks(ctx context.Context) ([]entity.RankedStock, error)
	GetIndexStocks(ctx context.Context, indexName string) ([]entity.RankedStock, error)
}

// symbolPattern accepts 1-5 uppercase letters with an optional share-class
// suffix (e.g. BRK-B). Input is uppercased before matching.
var symbolPattern = regexp.MustCompile(`^[A-Z]{1,5}(-[A-Z])?$`)

const (
	defaultDividendYears = 5
	maxCompareSymbols    = 5
	minCompareSymbols    = 2
)

// StockHandler handles HTTP requests for market data.
type StockHandler struct {
	uc StocksUsecase
}

// NewStockHandler creates a StockHandler with the given usecase.
func NewStockHandler(uc StocksUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// GetStockInfo returns the quote snapshot for one symbol.
//
// GET /stocks/:symbol/info
func (h *StockHandler) GetStockInfo(c *gin.Context) {
	symbol, ok := h.symbolParam(c)
	if !ok {
		return
	}

	info, err := h.uc.GetStockInfo(c.Request.Context(), symbol)
	if err != nil {
		h.writeError(c, err, "symbol", symbol)
		return
	}
	c.JSON(http.StatusOK, api.OK(info, ""))
}

// chartResponse echoes the requested chart type alongside the series.
type chartResponse struct {
	*entity.ChartData
	ChartType string `json:"chartType"`
}

// GetStockChart returns an OHLCV series for one symbol.
//
// GET /stocks/:symbol/chart?period=1mo&interval=1d&chart_type=line
func (h *StockHandler) GetStockChart(c *gin.Context) {
	symbol, ok := h.symbolParam(c)
	if !ok {
		return
	}

	var q dto.ChartQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.Fail(api.CodeInvalidRequest, err.Error()))
		return
	}
	if q.ChartType == "" {
		q.ChartType = "line"
	}

	chart, err := h.uc.GetStockChart(c.Request.Context(), symbol, q.Period, q.Interval)
	if err != nil {
		h.writeError(c, err, "symbol", symbol)
		return
	}
	c.JSON(http.StatusOK, api.OK(chartResponse{ChartData: chart, ChartType: q.ChartType}, ""))
}

// SearchStocks returns symbol suggestions for a free-text query.
// Korean company names are accepted.
//
// GET /stocks/search?query=apple&limit=10
func (h *StockHandler) SearchStocks(c *gin.Context) {
	var q dto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.Fail(api.CodeInvalidRequest, err.Error()))
		return
	}
	if q.Limit == 0 {
		q.Limit = usecase.DefaultSearchLimit
	}

	results, err := h.uc.SearchStocks(c.Request.Context(), q.Query, q.Limit)
	if err != nil {
		h.writeError(c, err, "query", q.Query)
		return
	}
	c.JSON(http.StatusOK, api.OK(results, ""))
}

// GetPopularStocks returns quotes for the curated popular list.
//
// GET /stocks/popular
func (h *StockHandler) GetPopularStocks(c *gin.Context) {
	stocks, err := h.uc.GetPopularStocks(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.OK(stocks, ""))
}

// GetFinancialData returns the latest income statement figures.
//
// GET /stocks/:symbol/financial
func (h *StockHandler) GetFinancialData(c *gin.Context) {
	symbol, ok := h.symbolParam(c)
	if !ok {
		return
	}

	data, err := h.uc.GetFinancialData(c.Request.Context(), symbol)
	if err != nil {
		h.writeError(c, err, "symbol", symbol)
		return
	}
	c.JSON(http.StatusOK, api.OK(data, ""))
}

// GetDividendHistory returns dividend payments over a lookback window.
//
// GET /stocks/:symbol/dividends?years=5
func (h *StockHandler) GetDividendHistory(c *gin.Context) {
	symbol, ok := h.symbolParam(c)
	if !ok {
		return
	}

	var q dto.DividendsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.Fail(api.CodeInvalidRequest, err.Error()))
		return
	}
	if q.Years == 0 {
		q.Years = defaultDividendYears
	}

	dividends, err := h.uc.GetDividendHistory(c.Request.Context(), symbol, q.Years)
	if err != nil {
		h.writeError(c, err, "symbol", symbol)
		return
	}
	c.JSON(http.StatusOK, api.OK(dividends, ""))
}

// CompareStocks returns quotes for 2 to 5 symbols, in request order.
//
// GET /stocks/compare?symbols=AAPL,MSFT
func (h *StockHandler) CompareStocks(c *gin.Context) {
	var q dto.CompareQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.Fail(api.CodeInvalidRequest, err.Error()))
		return
	}

	raw := strings.Split(q.Symbols, ",")
	symbols := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if !symbolPattern.MatchString(s) {
			c.JSON(http.StatusBadRequest, api.Fail(api.CodeInvalidRequest, "invalid symbol: "+s))
			return
		}
		symbols = append(symbols, s)
	}
	if len(symbols) < minCompareSymbols || len(symbols) > maxCompareSymbols {
		c.JSON(http.StatusBadRequest,
			api.Fail(api.CodeInvalidRequest, "symbols must list between 2 and 5 tickers"))
		return
	}

	stocks, err := h.uc.CompareStocks(c.Request.Context(), symbols)
	if err != nil {
		h.writeError(c, err, "symbols", q.Symbols)
		return
	}
	c.JSON(http.StatusOK, api.OK(stocks, ""))
}

// GetCompanyDescription returns the company profile with a Korean
// description when translation is available.
//
// GET /stocks/:symbol/description
func (h *StockHandler) GetCompanyDescription(c *gin.Context) {
	symbol, ok := h.symbolParam(c)
	if !ok {
		return
	}

	profile, err := h.uc.GetCompanyDescription(c.Request.Context(), symbol)
	if err != nil {
		h.writeError(c, err, "symbol", symbol)
		return
	}
	c.JSON(http.StatusOK, api.OK(profile, ""))
}

// GetTopMarketCapStocks returns the top 10 stocks by market cap.
//
// GET /stocks/top-market-cap
func (h *StockHandler) GetTopMarketCapStocks(c *gin.Context) {
	stocks, err := h.uc.GetTopMarketCapStocks(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.OK(stocks, ""))
}

// GetIndexStocks returns the top constituents of a market index by
// market cap.
//
// GET /stocks/index/:index_name/stocks
func (h *StockHandler) GetIndexStocks(c *gin.Context) {
	indexName := strings.ToLower(strings.TrimSpace(c.Param("index_name")))

	stocks, err := h.uc.GetIndexStocks(c.Request.Context(), indexName)
	if err != nil {
		h.writeError(c, err, "index", indexName)
		return
	}
	c.JSON(http.StatusOK, api.OK(stocks, ""))
}

// symbolParam validates and normalizes the :symbol path parameter. On
// failure it writes a 400 response and returns ok=false.
func (h *StockHandler) symbolParam(c *gin.Context) (string, bool) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	if !symbolPattern.MatchString(symbol) {
		c.JSON(http.StatusBadRequest, api.Fail(api.CodeInvalidRequest, "invalid symbol format"))
		return "", false
	}
	return symbol, true
}

// writeError maps domain errors to HTTP status codes. Extra key/value pairs
// are added to the log entry.
func (h *StockHandler) writeError(c *gin.Context, err error, logAttrs ...any) {
	attrs := append([]any{"error", err, "path", c.FullPath()}, logAttrs...)

	switch {
	case errors.Is(err, domain.ErrInvalidIndex):
		slog.Info("invalid index requested", attrs...)
		c.JSON(http.StatusBadRequest, api.Fail(api.CodeInvalidRequest, err.Error()))
	case errors.Is(err, domain.ErrSymbolNotFound):
		slog.Info("symbol not found", attrs...)
		c.JSON(http.StatusNotFound, api.Fail(api.CodeNotFound, err.Error()))
	case errors.Is(err, domain.ErrRateLimited), errors.Is(err, domain.ErrUpstreamUnavailable):
		slog.Warn("market data provider unavailable", attrs...)
		c.JSON(http.StatusBadGateway, api.Fail(api.CodeUpstreamUnavailable, err.Error()))
	default:
		slog.Error("stock request failed", attrs...)
		c.JSON(http.StatusInternalServerError, api.Fail(api.CodeInternal, "internal server error"))
	}
}
