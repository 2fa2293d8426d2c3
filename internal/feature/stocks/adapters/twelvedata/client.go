package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"stock_dashboard/internal/feature/stocks/adapters/twelvedata/dto"
	"stock_dashboard/internal/feature/stocks/domain"
	"stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/feature/stocks/usecase"
)

// Client implements MarketRepository against the Twelve Data HTTP API.
// All failures are reported through the domain sentinel errors.
type Client struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Client implements MarketRepository.
var _ usecase.MarketRepository = (*Client)(nil)

// NewClient creates a Client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// FetchQuote retrieves the current quote snapshot for a symbol.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	q := url.Values{}
	q.Set("symbol", symbol)

	var body dto.QuoteResponse
	if err := c.get(ctx, "/quote", q, &body); err != nil {
		return nil, err
	}
	if err := apiError(body.APIError); err != nil {
		return nil, err
	}

	quote := &entity.Quote{
		Symbol:           symbol,
		Name:             body.Name,
		Exchange:         body.Exchange,
		Currency:         body.Currency,
		Sector:           body.Sector,
		Industry:         body.Industry,
		CurrentPrice:     parseFloat(body.Close),
		PreviousClose:    parseFloat(body.PreviousClose),
		High:             parseFloat(body.High),
		Low:              parseFloat(body.Low),
		Volume:           parseInt(body.Volume),
		AvgVolume:        parseInt(body.AverageVolume),
		MarketCap:        parseFloat(body.MarketCap),
		PERatio:          parseFloat(body.PERatio),
		DividendYield:    parseFloat(body.DividendYield),
		Beta:             parseFloat(body.Beta),
		FiftyTwoWeekHigh: parseFloat(body.FiftyTwoWeek.High),
		FiftyTwoWeekLow:  parseFloat(body.FiftyTwoWeek.Low),
	}
	if quote.Currency == "" {
		quote.Currency = "USD"
	}
	return quote, nil
}

// FetchHistory retrieves an OHLCV series. Periods and intervals use the API's
// own vocabulary after mapping (e.g. "1d" -> "1day").
func (c *Client) FetchHistory(ctx context.Context, symbol, period, interval string) ([]entity.ChartPoint, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("interval", intervalParam(interval))
	q.Set("outputsize", strconv.Itoa(outputSize(period, interval)))

	var body dto.TimeSeriesResponse
	if err := c.get(ctx, "/time_series", q, &body); err != nil {
		return nil, err
	}
	if err := apiError(body.APIError); err != nil {
		return nil, err
	}

	points := make([]entity.ChartPoint, 0, len(body.Values))
	for _, v := range body.Values {
		tm, err := time.Parse("2006-01-02 15:04:05", v.Datetime)
		if err != nil {
			tm, err = time.Parse("2006-01-02", v.Datetime)
			if err != nil {
				return nil, fmt.Errorf("parse time %q: %w", v.Datetime, err)
			}
		}
		o, err := strconv.ParseFloat(v.Open, 64)
		if err != nil {
			return nil, fmt.Errorf("parse open %q: %w", v.Open, err)
		}
		h, err := strconv.ParseFloat(v.High, 64)
		if err != nil {
			return nil, fmt.Errorf("parse high %q: %w", v.High, err)
		}
		l, err := strconv.ParseFloat(v.Low, 64)
		if err != nil {
			return nil, fmt.Errorf("parse low %q: %w", v.Low, err)
		}
		cl, err := strconv.ParseFloat(v.Close, 64)
		if err != nil {
			return nil, fmt.Errorf("parse close %q: %w", v.Close, err)
		}
		vol, err := strconv.ParseInt(v.Volume, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse volume %q: %w", v.Volume, err)
		}

		points = append(points, entity.ChartPoint{
			Time:   tm,
			Open:   o,
			High:   h,
			Low:    l,
			Close:  cl,
			Volume: vol,
		})
	}
	return points, nil
}

// FetchFinancials retrieves the latest annual income statement figures.
func (c *Client) FetchFinancials(ctx context.Context, symbol string) (*entity.FinancialData, error) {
	q := url.Values{}
	q.Set("symbol", symbol)

	var body dto.IncomeStatementResponse
	if err := c.get(ctx, "/income_statement", q, &body); err != nil {
		return nil, err
	}
	if err := apiError(body.APIError); err != nil {
		return nil, err
	}
	if len(body.IncomeStatement) == 0 {
		return nil, domain.ErrSymbolNotFound
	}

	latest := body.IncomeStatement[0]
	return &entity.FinancialData{
		Symbol:          symbol,
		Period:          latest.FiscalDate,
		Revenue:         latest.Sales,
		NetIncome:       latest.NetIncome,
		OperatingIncome: latest.OperatingIncome,
	}, nil
}

// FetchDividends retrieves the full dividend payment history.
func (c *Client) FetchDividends(ctx context.Context, symbol string) ([]entity.DividendData, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("range", "full")

	var body dto.DividendsResponse
	if err := c.get(ctx, "/dividends", q, &body); err != nil {
		return nil, err
	}
	if err := apiError(body.APIError); err != nil {
		return nil, err
	}

	out := make([]entity.DividendData, 0, len(body.Dividends))
	for _, d := range body.Dividends {
		tm, err := time.Parse("2006-01-02", d.ExDate)
		if err != nil {
			return nil, fmt.Errorf("parse ex_date %q: %w", d.ExDate, err)
		}
		out = append(out, entity.DividendData{
			Symbol: symbol,
			Date:   tm,
			Amount: d.Amount,
			Type:   "cash",
		})
	}
	return out, nil
}

// FetchProfile retrieves the company profile. The description is returned in
// the provider's language; translation is the usecase's concern.
func (c *Client) FetchProfile(ctx context.Context, symbol string) (*entity.CompanyProfile, error) {
	q := url.Values{}
	q.Set("symbol", symbol)

	var body dto.ProfileResponse
	if err := c.get(ctx, "/profile", q, &body); err != nil {
		return nil, err
	}
	if err := apiError(body.APIError); err != nil {
		return nil, err
	}

	return &entity.CompanyProfile{
		Symbol:              symbol,
		Name:                body.Name,
		Sector:              body.Sector,
		Industry:            body.Industry,
		Country:             body.Country,
		Website:             body.Website,
		OriginalDescription: body.Description,
		Employees:           body.Employees,
	}, nil
}

// get performs a GET against the API and decodes the JSON response.
// Transport failures and server errors map to the domain sentinels.
func (c *Client) get(ctx context.Context, path string, q url.Values, dest any) error {
	q.Set("apikey", c.cfg.APIKey)
	u := fmt.Sprintf("%s%s?%s", c.cfg.BaseURL, path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	switch {
	case res.StatusCode == http.StatusTooManyRequests:
		return domain.ErrRateLimited
	case res.StatusCode == http.StatusNotFound:
		return domain.ErrSymbolNotFound
	case res.StatusCode >= 400:
		return fmt.Errorf("%w: http %d", domain.ErrUpstreamUnavailable, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: decode: %v", domain.ErrUpstreamUnavailable, err)
	}
	return nil
}

// apiError maps the in-band error envelope to the domain sentinels.
// Twelve Data reports errors with HTTP 200 and a status field.
func apiError(e dto.APIError) error {
	if e.Status != "error" {
		return nil
	}
	switch e.Code {
	case http.StatusNotFound:
		return domain.ErrSymbolNotFound
	case http.StatusTooManyRequests:
		return domain.ErrRateLimited
	default:
		return fmt.Errorf("%w: %s", domain.ErrUpstreamUnavailable, e.Message)
	}
}

// parseFloat tolerates empty and malformed optional fields.
func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// parseInt tolerates empty and malformed optional fields.
func parseInt(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

// intervalToAPI maps chart intervals to the API's vocabulary.
var intervalToAPI = map[string]string{
	"1m": "1min", "2m": "1min", "5m": "5min", "15m": "15min",
	"30m": "30min", "60m": "1h", "90m": "1h", "1h": "1h",
	"1d": "1day", "5d": "1day", "1wk": "1week", "1mo": "1month", "3mo": "1month",
}

func intervalParam(interval string) string {
	if p, ok := intervalToAPI[interval]; ok {
		return p
	}
	return "1day"
}

// periodDays approximates each lookback window in calendar days.
var periodDays = map[string]int{
	"1d": 1, "5d": 5, "1mo": 30, "3mo": 90, "6mo": 180,
	"1y": 365, "2y": 730, "5y": 1825, "10y": 3650,
}

// intervalDays approximates each bar width in days; sub-daily bars count as
// a full trading day's worth of bars via the divisor below.
var intervalBarsPerDay = map[string]int{
	"1m": 390, "2m": 195, "5m": 78, "15m": 26, "30m": 13,
	"60m": 7, "90m": 5, "1h": 7,
}

// outputSize estimates how many bars cover the requested period, clamped to
// the API maximum of 5000.
func outputSize(period, interval string) int {
	days, ok := periodDays[period]
	if !ok {
		switch period {
		case "ytd":
			days = time.Now().YearDay()
		default: // "max"
			return 5000
		}
	}

	bars := days
	if perDay, ok := intervalBarsPerDay[interval]; ok {
		bars = days * perDay
	} else {
		switch interval {
		case "5d":
			bars = days / 5
		case "1wk":
			bars = days / 7
		case "1mo":
			bars = days / 30
		case "3mo":
			bars = days / 90
		}
	}

	if bars < 1 {
		bars = 1
	}
	if bars > 5000 {
		bars = 5000
	}
	return bars
}
