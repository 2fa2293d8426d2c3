package staticdata

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_dashboard/internal/feature/stocks/domain"
)

func TestMarket_FetchQuote(t *testing.T) {
	ctx := context.Background()
	m := NewMarket()

	t.Run("known symbol", func(t *testing.T) {
		quote, err := m.FetchQuote(ctx, "AAPL")

		require.NoError(t, err)
		assert.Equal(t, "AAPL", quote.Symbol)
		assert.Equal(t, "Apple Inc.", quote.Name)
		assert.Greater(t, quote.CurrentPrice, 0.0)
		assert.Greater(t, quote.MarketCap, 0.0)
	})

	t.Run("unknown symbol", func(t *testing.T) {
		_, err := m.FetchQuote(ctx, "NOPE")

		assert.ErrorIs(t, err, domain.ErrSymbolNotFound)
	})
}

func TestMarket_FetchHistory(t *testing.T) {
	ctx := context.Background()
	m := NewMarket()

	points, err := m.FetchHistory(ctx, "MSFT", "1y", "1d")

	require.NoError(t, err)
	require.Len(t, points, historyPoints)

	for i, p := range points {
		assert.Greater(t, p.Open, 0.0)
		assert.GreaterOrEqual(t, p.High, p.Open)
		assert.GreaterOrEqual(t, p.High, p.Close)
		assert.LessOrEqual(t, p.Low, p.Open)
		assert.LessOrEqual(t, p.Low, p.Close)
		assert.GreaterOrEqual(t, p.Volume, int64(0))
		if i > 0 {
			assert.True(t, p.Time.After(points[i-1].Time), "series must be chronological")
		}
	}
	assert.WithinDuration(t, time.Now().UTC(), points[len(points)-1].Time, 48*time.Hour)
}

func TestMarket_FetchDividends(t *testing.T) {
	ctx := context.Background()
	m := NewMarket()

	t.Run("payer gets a quarterly history", func(t *testing.T) {
		dividends, err := m.FetchDividends(ctx, "AAPL")

		require.NoError(t, err)
		assert.NotEmpty(t, dividends)
		for _, d := range dividends {
			assert.Equal(t, "AAPL", d.Symbol)
			assert.Equal(t, "cash", d.Type)
			assert.Greater(t, d.Amount, 0.0)
		}
	})

	t.Run("non-payer gets an empty history", func(t *testing.T) {
		dividends, err := m.FetchDividends(ctx, "TSLA")

		require.NoError(t, err)
		assert.Empty(t, dividends)
	})
}

func TestMarket_FetchFinancialsAndProfile(t *testing.T) {
	ctx := context.Background()
	m := NewMarket()

	fin, err := m.FetchFinancials(ctx, "NVDA")
	require.NoError(t, err)
	assert.Equal(t, "NVDA", fin.Symbol)
	assert.Greater(t, fin.Revenue, 0.0)

	profile, err := m.FetchProfile(ctx, "NVDA")
	require.NoError(t, err)
	assert.Equal(t, "NVDA", profile.Symbol)
	assert.Equal(t, "NVIDIA Corporation", profile.Name)
	assert.NotEmpty(t, profile.OriginalDescription)
	assert.Greater(t, profile.MarketCap, 0.0)
}
