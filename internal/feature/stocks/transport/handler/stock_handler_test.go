package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_dashboard/internal/feature/stocks/domain"
	"stock_dashboard/internal/feature/stocks/domain/entity"
)

// mockStocksUsecase is a mock implementation of the StocksUsecase interface.
type mockStocksUsecase struct {
	GetStockInfoFunc          func(ctx context.Context, symbol string) (*entity.StockInfo, error)
	GetStockChartFunc         func(ctx context.Context, symbol, period, interval string) (*entity.ChartData, error)
	SearchStocksFunc          func(ctx context.Context, query string, limit int) ([]entity.Suggestion, error)
	GetPopularStocksFunc      func(ctx context.Context) ([]entity.StockInfo, error)
	GetFinancialDataFunc      func(ctx context.Context, symbol string) (*entity.FinancialData, error)
	GetDividendHistoryFunc    func(ctx context.Context, symbol string, years int) ([]entity.DividendData, error)
	CompareStocksFunc         func(ctx context.Context, symbols []string) ([]entity.StockInfo, error)
	GetCompanyDescriptionFunc func(ctx context.Context, symbol string) (*entity.CompanyProfile, error)
	GetTopMarketCapStocksFunc func(ctx context.Context) ([]entity.RankedStock, error)
	GetIndexStocksFunc        func(ctx context.Context, indexName string) ([]entity.RankedStock, error)
}

func (m *mockStocksUsecase) GetStockInfo(ctx context.Context, symbol string) (*entity.StockInfo, error) {
	if m.GetStockInfoFunc != nil {
		return m.GetStockInfoFunc(ctx, symbol)
	}
	return nil, domain.ErrSymbolNotFound
}

func (m *mockStocksUsecase) GetStockChart(ctx context.Context, symbol, period, interval string) (*entity.ChartData, error) {
	if m.GetStockChartFunc != nil {
		return m.GetStockChartFunc(ctx, symbol, period, interval)
	}
	return nil, domain.ErrSymbolNotFound
}

func (m *mockStocksUsecase) SearchStocks(ctx context.Context, query string, limit int) ([]entity.Suggestion, error) {
	if m.SearchStocksFunc != nil {
		return m.SearchStocksFunc(ctx, query, limit)
	}
	return nil, nil
}

func (m *mockStocksUsecase) GetPopularStocks(ctx context.Context) ([]entity.StockInfo, error) {
	if m.GetPopularStocksFunc != nil {
		return m.GetPopularStocksFunc(ctx)
	}
	return nil, nil
}

func (m *mockStocksUsecase) GetFinancialData(ctx context.Context, symbol string) (*entity.FinancialData, error) {
	if m.GetFinancialDataFunc != nil {
		return m.GetFinancialDataFunc(ctx, symbol)
	}
	return nil, domain.ErrSymbolNotFound
}

func (m *mockStocksUsecase) GetDividendHistory(ctx context.Context, symbol string, years int) ([]entity.DividendData, error) {
	if m.GetDividendHistoryFunc != nil {
		return m.GetDividendHistoryFunc(ctx, symbol, years)
	}
	return nil, domain.ErrSymbolNotFound
}

func (m *mockStocksUsecase) CompareStocks(ctx context.Context, symbols []string) ([]entity.StockInfo, error) {
	if m.CompareStocksFunc != nil {
		return m.CompareStocksFunc(ctx, symbols)
	}
	return nil, nil
}

func (m *mockStocksUsecase) GetCompanyDescription(ctx context.Context, symbol string) (*entity.CompanyProfile, error) {
	if m.GetCompanyDescriptionFunc != nil {
		return m.GetCompanyDescriptionFunc(ctx, symbol)
	}
	return nil, domain.ErrSymbolNotFound
}

func (m *mockStocksUsecase) GetTopMarketCapStocks(ctx context.Context) ([]entity.RankedStock, error) {
	if m.GetTopMarketCapStocksFunc != nil {
		return m.GetTopMarketCapStocksFunc(ctx)
	}
	return nil, nil
}

func (m *mockStocksUsecase) GetIndexStocks(ctx context.Context, indexName string) ([]entity.RankedStock, error) {
	if m.GetIndexStocksFunc != nil {
		return m.GetIndexStocksFunc(ctx, indexName)
	}
	return nil, domain.ErrInvalidIndex
}

func newStockRouter(uc StocksUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewStockHandler(uc)

	r := gin.New()
	stocks := r.Group("/stocks")
	stocks.GET("/search", h.SearchStocks)
	stocks.GET("/popular", h.GetPopularStocks)
	stocks.GET("/compare", h.CompareStocks)
	stocks.GET("/top-market-cap", h.GetTopMarketCapStocks)
	stocks.GET("/index/:index_name/stocks", h.GetIndexStocks)
	stocks.GET("/:symbol/info", h.GetStockInfo)
	stocks.GET("/:symbol/chart", h.GetStockChart)
	stocks.GET("/:symbol/financial", h.GetFinancialData)
	stocks.GET("/:symbol/dividends", h.GetDividendHistory)
	stocks.GET("/:symbol/description", h.GetCompanyDescription)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error.Code
}

func TestStockHandler_GetStockInfo(t *testing.T) {
	t.Run("success wraps the quote in the envelope", func(t *testing.T) {
		uc := &mockStocksUsecase{
			GetStockInfoFunc: func(_ context.Context, symbol string) (*entity.StockInfo, error) {
				assert.Equal(t, "AAPL", symbol)
				return &entity.StockInfo{Symbol: "AAPL", CurrentPrice: 175.5}, nil
			},
		}

		w := get(newStockRouter(uc), "/stocks/aapl/info")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
		assert.Contains(t, w.Body.String(), `"currentPrice":175.5`)
	})

	t.Run("lowercase symbol is uppercased before use", func(t *testing.T) {
		uc := &mockStocksUsecase{
			GetStockInfoFunc: func(_ context.Context, symbol string) (*entity.StockInfo, error) {
				return &entity.StockInfo{Symbol: symbol}, nil
			},
		}

		w := get(newStockRouter(uc), "/stocks/brk-b/info")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"symbol":"BRK-B"`)
	})

	t.Run("invalid symbol format is rejected", func(t *testing.T) {
		w := get(newStockRouter(&mockStocksUsecase{}), "/stocks/TOOLONG99/info")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_request", errorCode(t, w))
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		w := get(newStockRouter(&mockStocksUsecase{}), "/stocks/NOPE/info")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "not_found", errorCode(t, w))
	})

	t.Run("rate limit maps to 502", func(t *testing.T) {
		uc := &mockStocksUsecase{
			GetStockInfoFunc: func(context.Context, string) (*entity.StockInfo, error) {
				return nil, domain.ErrRateLimited
			},
		}

		w := get(newStockRouter(uc), "/stocks/AAPL/info")

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "upstream_unavailable", errorCode(t, w))
	})
}

func TestStockHandler_GetStockChart(t *testing.T) {
	t.Run("passes period and interval and echoes chart type", func(t *testing.T) {
		uc := &mockStocksUsecase{
			GetStockChartFunc: func(_ context.Context, symbol, period, interval string) (*entity.ChartData, error) {
				assert.Equal(t, "1y", period)
				assert.Equal(t, "1wk", interval)
				return &entity.ChartData{Symbol: symbol, Period: period, Interval: interval}, nil
			},
		}

		w := get(newStockRouter(uc), "/stocks/AAPL/chart?period=1y&interval=1wk&chart_type=candlestick")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"chartType":"candlestick"`)
	})

	t.Run("chart type defaults to line", func(t *testing.T) {
		uc := &mockStocksUsecase{
			GetStockChartFunc: func(_ context.Context, symbol, period, interval string) (*entity.ChartData, error) {
				return &entity.ChartData{Symbol: symbol}, nil
			},
		}

		w := get(newStockRouter(uc), "/stocks/AAPL/chart")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"chartType":"line"`)
	})

	t.Run("unknown chart type is rejected", func(t *testing.T) {
		w := get(newStockRouter(&mockStocksUsecase{}), "/stocks/AAPL/chart?chart_type=pie")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStockHandler_SearchStocks(t *testing.T) {
	t.Run("missing query is rejected", func(t *testing.T) {
		w := get(newStockRouter(&mockStocksUsecase{}), "/stocks/search")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("limit defaults when omitted", func(t *testing.T) {
		uc := &mockStocksUsecase{
			SearchStocksFunc: func(_ context.Context, query string, limit int) ([]entity.Suggestion, error) {
				assert.Equal(t, "apple", query)
				assert.Equal(t, 10, limit)
				return []entity.Suggestion{{Symbol: "AAPL"}}, nil
			},
		}

		w := get(newStockRouter(uc), "/stocks/search?query=apple")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("limit above the cap is rejected", func(t *testing.T) {
		w := get(newStockRouter(&mockStocksUsecase{}), "/stocks/search?query=apple&limit=100")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStockHandler_CompareStocks(t *testing.T) {
	t.Run("splits, trims and uppercases symbols", func(t *testing.T) {
		uc := &mockStocksUsecase{
			CompareStocksFunc: func(_ context.Context, symbols []string) ([]entity.StockInfo, error) {
				assert.Equal(t, []string{"AAPL", "MSFT"}, symbols)
				return []entity.StockInfo{{Symbol: "AAPL"}, {Symbol: "MSFT"}}, nil
			},
		}

		w := get(newStockRouter(uc), "/stocks/compare?symbols=aapl,%20msft")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("a single symbol is rejected", func(t *testing.T) {
		w := get(newStockRouter(&mockStocksUsecase{}), "/stocks/compare?symbols=AAPL")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("more than five symbols are rejected", func(t *testing.T) {
		w := get(newStockRouter(&mockStocksUsecase{}), "/stocks/compare?symbols=A,B,C,D,E,F")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("an invalid symbol in the list is rejected", func(t *testing.T) {
		w := get(newStockRouter(&mockStocksUsecase{}), "/stocks/compare?symbols=AAPL,NOT_OK")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStockHandler_GetDividendHistory(t *testing.T) {
	t.Run("years defaults to five", func(t *testing.T) {
		uc := &mockStocksUsecase{
			GetDividendHistoryFunc: func(_ context.Context, symbol string, years int) ([]entity.DividendData, error) {
				assert.Equal(t, 5, years)
				return []entity.DividendData{}, nil
			},
		}

		w := get(newStockRouter(uc), "/stocks/AAPL/dividends")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("years outside 1..10 is rejected", func(t *testing.T) {
		w := get(newStockRouter(&mockStocksUsecase{}), "/stocks/AAPL/dividends?years=11")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStockHandler_GetIndexStocks(t *testing.T) {
	t.Run("known index returns the ranking", func(t *testing.T) {
		uc := &mockStocksUsecase{
			GetIndexStocksFunc: func(_ context.Context, indexName string) ([]entity.RankedStock, error) {
				assert.Equal(t, "sp500", indexName)
				return []entity.RankedStock{{Symbol: "AAPL", MarketCap: 3e12}}, nil
			},
		}

		w := get(newStockRouter(uc), "/stocks/index/SP500/stocks")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown index maps to 400", func(t *testing.T) {
		w := get(newStockRouter(&mockStocksUsecase{}), "/stocks/index/ftse/stocks")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_request", errorCode(t, w))
	})
}

func TestStockHandler_Listings(t *testing.T) {
	t.Run("popular stocks", func(t *testing.T) {
		uc := &mockStocksUsecase{
			GetPopularStocksFunc: func(context.Context) ([]entity.StockInfo, error) {
				return []entity.StockInfo{{Symbol: "AAPL"}}, nil
			},
		}

		w := get(newStockRouter(uc), "/stocks/popular")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "AAPL")
	})

	t.Run("top market cap upstream outage maps to 502", func(t *testing.T) {
		uc := &mockStocksUsecase{
			GetTopMarketCapStocksFunc: func(context.Context) ([]entity.RankedStock, error) {
				return nil, domain.ErrUpstreamUnavailable
			},
		}

		w := get(newStockRouter(uc), "/stocks/top-market-cap")

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestStockHandler_GetCompanyDescription(t *testing.T) {
	uc := &mockStocksUsecase{
		GetCompanyDescriptionFunc: func(_ context.Context, symbol string) (*entity.CompanyProfile, error) {
			return &entity.CompanyProfile{
				Symbol:              symbol,
				Description:         "애플은 가전제품을 설계합니다.",
				OriginalDescription: "Apple designs consumer electronics.",
			}, nil
		},
	}

	w := get(newStockRouter(uc), "/stocks/AAPL/description")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "originalDescription")
}
