// Package staticdata provides a built-in MarketRepository used when the live
// provider is unavailable. Quotes come from a fixture table and history is
// synthesized, so the data is plausible but not real.
package staticdata

import (
	"context"
	"math/rand"
	"time"

	"stock_dashboard/internal/feature/stocks/domain"
	"stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/feature/stocks/usecase"
)

// historyPoints is the fixed length of a synthesized daily series.
const historyPoints = 365

// Market serves fixture data for a small set of well-known symbols.
// Unknown symbols report ErrSymbolNotFound like the live provider.
type Market struct{}

// Compile-time check that Market implements MarketRepository.
var _ usecase.MarketRepository = (*Market)(nil)

// NewMarket creates the static market fixture.
func NewMarket() *Market {
	return &Market{}
}

// FetchQuote returns the fixture quote for known symbols.
func (m *Market) FetchQuote(_ context.Context, symbol string) (*entity.Quote, error) {
	f, ok := fixtures[symbol]
	if !ok {
		return nil, domain.ErrSymbolNotFound
	}
	q := f.quote
	q.Symbol = symbol
	return &q, nil
}

// FetchHistory synthesizes a pseudo-random geometric walk of daily bars
// around the symbol's base price. The walk is not seeded deterministically,
// so consecutive calls produce different series; this is an approximation
// for degraded mode, not a simulation.
func (m *Market) FetchHistory(_ context.Context, symbol, _, _ string) ([]entity.ChartPoint, error) {
	f, ok := fixtures[symbol]
	if !ok {
		return nil, domain.ErrSymbolNotFound
	}

	points := make([]entity.ChartPoint, 0, historyPoints)
	day := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -historyPoints)
	price := f.quote.PreviousClose

	for i := 0; i < historyPoints; i++ {
		// Daily drift within +-2%
		open := price
		change := 1 + (rand.Float64()-0.5)*0.04
		close := open * change
		high := maxFloat(open, close) * (1 + rand.Float64()*0.01)
		low := minFloat(open, close) * (1 - rand.Float64()*0.01)
		volume := f.quote.Volume/2 + rand.Int63n(f.quote.Volume+1)

		points = append(points, entity.ChartPoint{
			Time:   day,
			Open:   round2(open),
			High:   round2(high),
			Low:    round2(low),
			Close:  round2(close),
			Volume: volume,
		})

		price = close
		day = day.AddDate(0, 0, 1)
	}
	return points, nil
}

// FetchFinancials returns the fixture's latest-period figures.
func (m *Market) FetchFinancials(_ context.Context, symbol string) (*entity.FinancialData, error) {
	f, ok := fixtures[symbol]
	if !ok {
		return nil, domain.ErrSymbolNotFound
	}
	fin := f.financials
	fin.Symbol = symbol
	return &fin, nil
}

// FetchDividends synthesizes quarterly payments of the fixture amount over
// the past ten years. Non-payers get an empty history.
func (m *Market) FetchDividends(_ context.Context, symbol string) ([]entity.DividendData, error) {
	f, ok := fixtures[symbol]
	if !ok {
		return nil, domain.ErrSymbolNotFound
	}
	if f.quarterlyDividend <= 0 {
		return []entity.DividendData{}, nil
	}

	out := make([]entity.DividendData, 0, 40)
	date := time.Now().UTC().AddDate(-10, 0, 0)
	for date.Before(time.Now().UTC()) {
		out = append(out, entity.DividendData{
			Symbol: symbol,
			Date:   date,
			Amount: f.quarterlyDividend,
			Type:   "cash",
		})
		date = date.AddDate(0, 3, 0)
	}
	return out, nil
}

// FetchProfile returns the fixture profile.
func (m *Market) FetchProfile(_ context.Context, symbol string) (*entity.CompanyProfile, error) {
	f, ok := fixtures[symbol]
	if !ok {
		return nil, domain.ErrSymbolNotFound
	}
	p := f.profile
	p.Symbol = symbol
	p.Name = f.quote.Name
	p.Sector = f.quote.Sector
	p.Industry = f.quote.Industry
	p.MarketCap = f.quote.MarketCap
	return &p, nil
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func round2(f float64) float64 {
	return float64(int64(f*100+0.5)) / 100
}
