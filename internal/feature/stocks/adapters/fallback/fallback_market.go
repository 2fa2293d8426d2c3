// Package fallback decorates a live MarketRepository with a degraded-mode
// secondary. Availability failures (rate limits, upstream outages) are served
// from the secondary; a not-found answer from the live provider is
// authoritative and never falls back.
package fallback

import (
	"context"
	"errors"
	"log/slog"

	"stock_dashboard/internal/feature/stocks/domain"
	"stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/feature/stocks/usecase"
)

// Market tries the primary repository first and falls back to the secondary
// on availability errors only.
type Market struct {
	primary   usecase.MarketRepository
	secondary usecase.MarketRepository
}

// Compile-time check that Market implements MarketRepository.
var _ usecase.MarketRepository = (*Market)(nil)

// NewMarket wraps primary with secondary as the degraded-mode source.
func NewMarket(primary, secondary usecase.MarketRepository) *Market {
	return &Market{primary: primary, secondary: secondary}
}

// shouldFallBack reports whether an error means the live provider is
// unavailable rather than the data being absent.
func shouldFallBack(err error) bool {
	return errors.Is(err, domain.ErrRateLimited) || errors.Is(err, domain.ErrUpstreamUnavailable)
}

func (m *Market) FetchQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	q, err := m.primary.FetchQuote(ctx, symbol)
	if err != nil && shouldFallBack(err) {
		slog.Warn("live quote unavailable, serving static data", "symbol", symbol, "error", err)
		return m.secondary.FetchQuote(ctx, symbol)
	}
	return q, err
}

func (m *Market) FetchHistory(ctx context.Context, symbol, period, interval string) ([]entity.ChartPoint, error) {
	h, err := m.primary.FetchHistory(ctx, symbol, period, interval)
	if err != nil && shouldFallBack(err) {
		slog.Warn("live history unavailable, serving static data", "symbol", symbol, "error", err)
		return m.secondary.FetchHistory(ctx, symbol, period, interval)
	}
	return h, err
}

func (m *Market) FetchFinancials(ctx context.Context, symbol string) (*entity.FinancialData, error) {
	f, err := m.primary.FetchFinancials(ctx, symbol)
	if err != nil && shouldFallBack(err) {
		slog.Warn("live financials unavailable, serving static data", "symbol", symbol, "error", err)
		return m.secondary.FetchFinancials(ctx, symbol)
	}
	return f, err
}

func (m *Market) FetchDividends(ctx context.Context, symbol string) ([]entity.DividendData, error) {
	d, err := m.primary.FetchDividends(ctx, symbol)
	if err != nil && shouldFallBack(err) {
		slog.Warn("live dividends unavailable, serving static data", "symbol", symbol, "error", err)
		return m.secondary.FetchDividends(ctx, symbol)
	}
	return d, err
}

func (m *Market) FetchProfile(ctx context.Context, symbol string) (*entity.CompanyProfile, error) {
	p, err := m.primary.FetchProfile(ctx, symbol)
	if err != nil && shouldFallBack(err) {
		slog.Warn("live profile unavailable, serving static data", "symbol", symbol, "error", err)
		return m.secondary.FetchProfile(ctx, symbol)
	}
	return p, err
}
