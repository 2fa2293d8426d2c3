package usecase

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
)

// Cache keys are derived deterministically from the operation and its
// parameters so equal requests always hit the same entry.
const keyTopMarketCap = "top_market_cap"

func keyStockInfo(symbol string) string {
	return "stock_info:" + symbol
}

func keyProfile(symbol string) string {
	return "profile:" + symbol
}

func keyIndexStocks(indexName string) string {
	return "index_stocks:" + indexName
}

// keyBatch hashes the sorted ticker list so the key is independent of
// request order.
func keyBatch(tickers []string) string {
	sorted := make([]string, len(tickers))
	copy(sorted, tickers)
	sort.Strings(sorted)

	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.Join(sorted, ",")))
	return fmt.Sprintf("batch:%x", h.Sum64())
}
