package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

func TestRedisStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("hit decodes the stored JSON", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewRedisStore(rdb, "stocks")

		want := sample{Symbol: "AAPL", Price: 175.5}
		b, err := json.Marshal(want)
		require.NoError(t, err)
		mock.ExpectGet("stocks:stock_info:AAPL").SetVal(string(b))

		var got sample
		ok, err := store.Get(ctx, "stock_info:AAPL", &got)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, want, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing key is a miss, not an error", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewRedisStore(rdb, "stocks")

		mock.ExpectGet("stocks:stock_info:MSFT").RedisNil()

		var got sample
		ok, err := store.Get(ctx, "stock_info:MSFT", &got)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupted entry is deleted and treated as a miss", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewRedisStore(rdb, "stocks")

		mock.ExpectGet("stocks:bad").SetVal("{not json")
		mock.ExpectDel("stocks:bad").SetVal(1)

		var got sample
		ok, err := store.Get(ctx, "bad", &got)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisStore_Set(t *testing.T) {
	ctx := context.Background()

	t.Run("stores JSON with the given TTL", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewRedisStore(rdb, "stocks")

		value := sample{Symbol: "AAPL", Price: 175.5}
		b, err := json.Marshal(value)
		require.NoError(t, err)
		mock.ExpectSet("stocks:stock_info:AAPL", b, 10*time.Minute).SetVal("OK")

		err = store.Set(ctx, "stock_info:AAPL", value, 10*time.Minute)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-positive TTL falls back to the default", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewRedisStore(rdb, "stocks")

		value := sample{Symbol: "AAPL"}
		b, err := json.Marshal(value)
		require.NoError(t, err)
		mock.ExpectSet("stocks:stock_info:AAPL", b, 5*time.Minute).SetVal("OK")

		err = store.Set(ctx, "stock_info:AAPL", value, 0)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisStore_KeyEscaping(t *testing.T) {
	store := NewRedisStore(nil, "")

	assert.Equal(t, "stocks:a_b", store.fullKey("a b"))
}
