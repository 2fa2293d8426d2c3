// Package usecase implements the business logic for stock market data
// operations: quotes, charts, search, financials, dividends, comparisons and
// market-cap rankings.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"stock_dashboard/internal/feature/stocks/domain"
	"stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/shared/ratelimiter"
)

const (
	// quoteTTL is how long a single-symbol quote stays cached.
	quoteTTL = 10 * time.Minute
	// listTTL is how long ranked listings stay cached.
	listTTL = 5 * time.Minute
	// batchTTL is how long batch quote results stay cached.
	batchTTL = 3 * time.Minute

	// maxConcurrentFetches bounds simultaneous upstream calls in a batch.
	maxConcurrentFetches = 5
	// batchBudget is the total wall-clock budget for one batch fetch.
	batchBudget = 60 * time.Second

	// DefaultSearchLimit caps search results when the caller does not.
	DefaultSearchLimit = 10
	// topListSize is the length of ranked listings.
	topListSize = 10
)

// MarketRepository abstracts the upstream market data provider. Implementations
// must report failures through the domain sentinel errors so the usecase sees
// one error contract regardless of provider.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type MarketRepository interface {
	// FetchQuote returns the current quote snapshot for a symbol.
	FetchQuote(ctx context.Context, symbol string) (*entity.Quote, error)
	// FetchHistory returns the OHLCV series for a symbol over period/interval.
	FetchHistory(ctx context.Context, symbol, period, interval string) ([]entity.ChartPoint, error)
	// FetchFinancials returns the latest-period financial figures for a symbol.
	FetchFinancials(ctx context.Context, symbol string) (*entity.FinancialData, error)
	// FetchDividends returns the dividend payment history for a symbol.
	FetchDividends(ctx context.Context, symbol string) ([]entity.DividendData, error)
	// FetchProfile returns the company profile for a symbol.
	FetchProfile(ctx context.Context, symbol string) (*entity.CompanyProfile, error)
}

// Cache abstracts the TTL store consulted before every upstream call.
// A nil Cache disables caching.
// Following Go convention, the interface is defined by the consumer (usecase).
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Translator translates company descriptions for bilingual profiles.
// A nil Translator leaves descriptions untranslated.
type Translator interface {
	TranslateToKorean(ctx context.Context, text string) (string, error)
}

// stockUsecase implements the stock data service.
type stockUsecase struct {
	market     MarketRepository
	cache      Cache
	translator Translator
	limiter    ratelimiter.Limiter
}

// NewStockUsecase creates a stockUsecase. cache and translator may be nil;
// a nil limiter is replaced with an unlimited one.
func NewStockUsecase(market MarketRepository, cache Cache, translator Translator, limiter ratelimiter.Limiter) *stockUsecase {
	if limiter == nil {
		limiter = ratelimiter.Unlimited{}
	}
	return &stockUsecase{
		market:     market,
		cache:      cache,
		translator: translator,
		limiter:    limiter,
	}
}

// GetStockInfo returns the normalized quote snapshot for a symbol, consulting
// the cache first.
func (u *stockUsecase) GetStockInfo(ctx context.Context, symbol string) (*entity.StockInfo, error) {
	key := keyStockInfo(symbol)
	var cached entity.StockInfo
	if u.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	quote, err := u.market.FetchQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	info := buildStockInfo(quote)
	u.cacheSet(ctx, key, info, quoteTTL)
	return info, nil
}

// buildStockInfo derives the change fields from a raw quote.
// A zero previous close yields a zero change percent rather than a division
// by zero.
func buildStockInfo(q *entity.Quote) *entity.StockInfo {
	change := q.CurrentPrice - q.PreviousClose
	changePercent := 0.0
	if q.PreviousClose > 0 {
		changePercent = change / q.PreviousClose * 100
	}
	return &entity.StockInfo{
		Symbol:           q.Symbol,
		Name:             q.Name,
		CurrentPrice:     q.CurrentPrice,
		PreviousClose:    q.PreviousClose,
		Change:           change,
		ChangePercent:    changePercent,
		High:             q.High,
		Low:              q.Low,
		Volume:           q.Volume,
		MarketCap:        q.MarketCap,
		PERatio:          q.PERatio,
		DividendYield:    q.DividendYield,
		Beta:             q.Beta,
		FiftyTwoWeekHigh: q.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  q.FiftyTwoWeekLow,
		AvgVolume:        q.AvgVolume,
		Currency:         q.Currency,
		Exchange:         q.Exchange,
		Sector:           q.Sector,
		Industry:         q.Industry,
	}
}

// GetStockChart returns the OHLCV series for a symbol. Unknown periods or
// intervals fall back to the defaults (1mo daily bars).
func (u *stockUsecase) GetStockChart(ctx context.Context, symbol, period, interval string) (*entity.ChartData, error) {
	period = normalizePeriod(period)
	interval = normalizeInterval(interval)

	points, err := u.market.FetchHistory(ctx, symbol, period, interval)
	if err != nil {
		return nil, err
	}

	return &entity.ChartData{
		Symbol:   symbol,
		Period:   period,
		Interval: interval,
		Data:     points,
	}, nil
}

// SearchStocks matches the query case-insensitively against symbol and
// company name of the curated candidate list, with Korean queries translated
// first. When nothing matches, the top candidates are returned instead so a
// search never comes back empty.
func (u *stockUsecase) SearchStocks(ctx context.Context, query string, limit int) ([]entity.Suggestion, error) {
	if limit <= 0 || limit > len(searchCandidates) {
		limit = DefaultSearchLimit
	}

	english := TranslateKoreanToEnglish(query)

	matches := make([]entity.Suggestion, 0, limit)
	for _, cand := range searchCandidates {
		if matchesQuery(cand, query) || matchesQuery(cand, english) {
			matches = append(matches, cand)
			if len(matches) == limit {
				break
			}
		}
	}

	// Fallback: garbage queries still get the popular list
	if len(matches) == 0 {
		matches = append(matches, searchCandidates[:limit]...)
	}
	return matches, nil
}

func matchesQuery(cand entity.Suggestion, query string) bool {
	if query == "" {
		return false
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(cand.Symbol), q) ||
		strings.Contains(strings.ToLower(cand.Name), q)
}

// GetPopularStocks returns quotes for the fixed popular symbol list.
// Symbols whose quote fails are dropped silently.
func (u *stockUsecase) GetPopularStocks(ctx context.Context) ([]entity.StockInfo, error) {
	stocks := make([]entity.StockInfo, 0, len(popularSymbols))
	for _, symbol := range popularSymbols {
		info, err := u.GetStockInfo(ctx, symbol)
		if err != nil {
			slog.Warn("popular stock fetch failed", "symbol", symbol, "error", err)
			continue
		}
		stocks = append(stocks, *info)
	}
	return stocks, nil
}

// GetFinancialData returns the latest-period financials for a symbol.
func (u *stockUsecase) GetFinancialData(ctx context.Context, symbol string) (*entity.FinancialData, error) {
	fin, err := u.market.FetchFinancials(ctx, symbol)
	if err != nil {
		return nil, err
	}
	fin.Symbol = symbol
	return fin, nil
}

// GetDividendHistory returns dividend payments within the trailing years
// window. The cutoff comparison happens in UTC on both sides.
func (u *stockUsecase) GetDividendHistory(ctx context.Context, symbol string, years int) ([]entity.DividendData, error) {
	if years <= 0 {
		years = 5
	}

	dividends, err := u.market.FetchDividends(ctx, symbol)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().AddDate(-years, 0, 0)
	out := make([]entity.DividendData, 0, len(dividends))
	for _, d := range dividends {
		if d.Date.UTC().After(cutoff) {
			d.Symbol = symbol
			out = append(out, d)
		}
	}
	return out, nil
}

// CompareStocks returns the quote snapshots of the given symbols in input
// order, silently dropping the ones that fail.
func (u *stockUsecase) CompareStocks(ctx context.Context, symbols []string) ([]entity.StockInfo, error) {
	out := make([]entity.StockInfo, 0, len(symbols))
	for _, symbol := range symbols {
		info, err := u.GetStockInfo(ctx, symbol)
		if err != nil {
			slog.Warn("compare: quote fetch failed", "symbol", symbol, "error", err)
			continue
		}
		out = append(out, *info)
	}
	return out, nil
}

// GetCompanyDescription returns the company profile with the business summary
// translated to Korean. Translation failure degrades to the original text.
func (u *stockUsecase) GetCompanyDescription(ctx context.Context, symbol string) (*entity.CompanyProfile, error) {
	key := keyProfile(symbol)
	var cached entity.CompanyProfile
	if u.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	profile, err := u.market.FetchProfile(ctx, symbol)
	if err != nil {
		return nil, err
	}

	profile.Description = profile.OriginalDescription
	if u.translator != nil && profile.OriginalDescription != "" {
		if ko, err := u.translator.TranslateToKorean(ctx, profile.OriginalDescription); err == nil {
			profile.Description = ko
		} else {
			slog.Warn("description translation failed", "symbol", symbol, "error", err)
		}
	}

	// The profile endpoint carries no market cap; take it from the quote,
	// best effort.
	if profile.MarketCap == 0 {
		if info, err := u.GetStockInfo(ctx, symbol); err == nil {
			profile.MarketCap = info.MarketCap
		}
	}

	u.cacheSet(ctx, key, profile, listTTL)
	return profile, nil
}

// GetTopMarketCapStocks returns the top ten stocks of the large-cap ticker
// list sorted by market capitalization.
func (u *stockUsecase) GetTopMarketCapStocks(ctx context.Context) ([]entity.RankedStock, error) {
	var cached []entity.RankedStock
	if u.cacheGet(ctx, keyTopMarketCap, &cached) {
		return cached, nil
	}

	infos := u.getStockInfoBatch(ctx, topMarketCapTickers)
	ranked := rankByMarketCap(infos)

	u.cacheSet(ctx, keyTopMarketCap, ranked, listTTL)
	return ranked, nil
}

// GetIndexStocks returns the top ten constituents of a supported index by
// market capitalization. Membership comes from curated constituent lists,
// not a live index feed.
func (u *stockUsecase) GetIndexStocks(ctx context.Context, indexName string) ([]entity.RankedStock, error) {
	indexName = strings.ToLower(indexName)
	constituents, ok := indexConstituents[indexName]
	if !ok {
		return nil, fmt.Errorf("%w: %q (must be one of: %s)",
			domain.ErrInvalidIndex, indexName, strings.Join(ValidIndexNames, ", "))
	}

	key := keyIndexStocks(indexName)
	var cached []entity.RankedStock
	if u.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	infos := u.getStockInfoBatch(ctx, constituents)
	ranked := rankByMarketCap(infos)

	u.cacheSet(ctx, key, ranked, listTTL)
	return ranked, nil
}

// rankByMarketCap converts quotes with a known market cap into listing
// entries, sorted descending and truncated to the listing size.
func rankByMarketCap(infos []entity.StockInfo) []entity.RankedStock {
	ranked := make([]entity.RankedStock, 0, len(infos))
	for _, info := range infos {
		if info.MarketCap <= 0 {
			continue
		}
		ranked = append(ranked, entity.RankedStock{
			Symbol:        info.Symbol,
			Name:          info.Name,
			Price:         info.CurrentPrice,
			Change:        info.Change,
			ChangePercent: info.ChangePercent,
			MarketCap:     info.MarketCap,
			Volume:        info.Volume,
		})
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].MarketCap > ranked[j].MarketCap })
	if len(ranked) > topListSize {
		ranked = ranked[:topListSize]
	}
	return ranked
}

// getStockInfoBatch fetches quotes for many tickers with bounded concurrency,
// a shared rate-limit budget and a total deadline. Per-ticker failures are
// logged and dropped; the surviving quotes keep input order.
func (u *stockUsecase) getStockInfoBatch(ctx context.Context, tickers []string) []entity.StockInfo {
	key := keyBatch(tickers)
	var cached []entity.StockInfo
	if u.cacheGet(ctx, key, &cached) {
		return cached
	}

	ctx, cancel := context.WithTimeout(ctx, batchBudget)
	defer cancel()

	results := make([]*entity.StockInfo, len(tickers))

	var g errgroup.Group
	g.SetLimit(maxConcurrentFetches)
	for i, ticker := range tickers {
		g.Go(func() error {
			if err := u.limiter.Wait(ctx); err != nil {
				// Batch budget exhausted; drop this ticker
				return nil
			}
			err := ratelimiter.Retry(ctx, ratelimiter.DefaultAttempts,
				ratelimiter.DefaultBaseDelay, ratelimiter.DefaultMaxDelay,
				func(err error) bool { return errors.Is(err, domain.ErrRateLimited) },
				func() error {
					info, err := u.GetStockInfo(ctx, ticker)
					if err != nil {
						return err
					}
					results[i] = info
					return nil
				})
			if err != nil {
				slog.Warn("batch quote fetch failed", "symbol", ticker, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	infos := make([]entity.StockInfo, 0, len(tickers))
	for _, r := range results {
		if r != nil {
			infos = append(infos, *r)
		}
	}

	u.cacheSet(ctx, key, infos, batchTTL)
	return infos
}

// cacheGet reads a cache entry, tolerating a nil cache and treating cache
// errors as misses.
func (u *stockUsecase) cacheGet(ctx context.Context, key string, dest any) bool {
	if u.cache == nil {
		return false
	}
	ok, err := u.cache.Get(ctx, key, dest)
	if err != nil {
		slog.Warn("cache read failed", "key", key, "error", err)
		return false
	}
	return ok
}

// cacheSet writes a cache entry best-effort.
func (u *stockUsecase) cacheSet(ctx context.Context, key string, value any, ttl time.Duration) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Set(ctx, key, value, ttl); err != nil {
		slog.Warn("cache write failed", "key", key, "error", err)
	}
}
