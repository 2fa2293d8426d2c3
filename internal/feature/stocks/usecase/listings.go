package usecase

import "stock_dashboard/internal/feature/stocks/domain/entity"

// popularSymbols is the fixed list served by the popular-stocks endpoint.
var popularSymbols = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA", "META"}

// topMarketCapTickers are the large-cap candidates ranked by the
// top-market-cap endpoint.
var topMarketCapTickers = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA",
	"META", "BRK-B", "LLY", "TSM", "V",
}

// ValidIndexNames enumerates the supported index listings, in the order they
// are reported to clients.
var ValidIndexNames = []string{"dow", "nasdaq", "sp500", "russell2000"}

// indexConstituents maps each supported index to its curated constituent
// tickers. Membership is a maintained snapshot, not a live index feed.
var indexConstituents = map[string][]string{
	"dow": {
		"AAPL", "MSFT", "JPM", "JNJ", "V", "PG", "HD", "UNH", "MA", "DIS",
		"WMT", "KO", "PFE", "T", "VZ", "MRK", "ABT", "CVX", "XOM", "CSCO",
		"NKE", "MCD", "BA", "CAT", "IBM", "GS", "AXP", "MMM", "DOW", "WBA",
	},
	"nasdaq": {
		"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "META", "TSLA", "NFLX",
		"ADBE", "PYPL", "INTC", "AMD", "CRM", "ORCL", "CSCO", "QCOM",
		"AVGO", "TXN", "MU", "ADI", "KLAC", "LRCX", "ASML", "AMAT",
		"CHTR", "CMCSA", "COST", "PEP", "TMUS",
	},
	"sp500": {
		"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "META", "BRK-B", "LLY",
		"TSM", "V", "UNH", "JNJ", "JPM", "PG", "HD", "MA", "DIS", "PFE",
		"ABBV", "KO", "PEP", "AVGO", "COST", "TMO", "DHR", "ACN", "WMT",
		"MRK", "VZ", "TXN",
	},
	"russell2000": {
		"IWM", "SMH", "XBI", "ARKK", "TQQQ", "SOXL", "LABU", "DPST",
		"ERX", "TMF", "UCO", "SCO", "UGA", "UNG", "USO", "BNO", "XOP",
		"XLE", "XLF", "XLK", "XLV", "XLI", "XLP", "XLY", "XLU", "XLB",
		"XLC", "XLRE", "XME", "XRT",
	},
}

// searchCandidates is the curated candidate list matched by stock search.
// The first entries double as the fallback result for unmatched queries.
var searchCandidates = []entity.Suggestion{
	{Symbol: "AAPL", Name: "Apple Inc.", Exchange: "NASDAQ", Type: "Common Stock", Country: "US"},
	{Symbol: "MSFT", Name: "Microsoft Corporation", Exchange: "NASDAQ", Type: "Common Stock", Country: "US"},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Exchange: "NASDAQ", Type: "Common Stock", Country: "US"},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", Exchange: "NASDAQ", Type: "Common Stock", Country: "US"},
	{Symbol: "TSLA", Name: "Tesla Inc.", Exchange: "NASDAQ", Type: "Common Stock", Country: "US"},
	{Symbol: "META", Name: "Meta Platforms Inc.", Exchange: "NASDAQ", Type: "Common Stock", Country: "US"},
	{Symbol: "NVDA", Name: "NVIDIA Corporation", Exchange: "NASDAQ", Type: "Common Stock", Country: "US"},
	{Symbol: "NFLX", Name: "Netflix Inc.", Exchange: "NASDAQ", Type: "Common Stock", Country: "US"},
	{Symbol: "JPM", Name: "JPMorgan Chase & Co.", Exchange: "NYSE", Type: "Common Stock", Country: "US"},
	{Symbol: "JNJ", Name: "Johnson & Johnson", Exchange: "NYSE", Type: "Common Stock", Country: "US"},
	{Symbol: "V", Name: "Visa Inc.", Exchange: "NYSE", Type: "Common Stock", Country: "US"},
	{Symbol: "PG", Name: "Procter & Gamble Co.", Exchange: "NYSE", Type: "Common Stock", Country: "US"},
	{Symbol: "UNH", Name: "UnitedHealth Group Inc.", Exchange: "NYSE", Type: "Common Stock", Country: "US"},
	{Symbol: "HD", Name: "Home Depot Inc.", Exchange: "NYSE", Type: "Common Stock", Country: "US"},
	{Symbol: "DIS", Name: "Walt Disney Co.", Exchange: "NYSE", Type: "Common Stock", Country: "US"},
	{Symbol: "PYPL", Name: "PayPal Holdings Inc.", Exchange: "NASDAQ", Type: "Common Stock", Country: "US"},
	{Symbol: "ADBE", Name: "Adobe Inc.", Exchange: "NASDAQ", Type: "Common Stock", Country: "US"},
	{Symbol: "CRM", Name: "Salesforce Inc.", Exchange: "NYSE", Type: "Common Stock", Country: "US"},
	{Symbol: "INTC", Name: "Intel Corporation", Exchange: "NASDAQ", Type: "Common Stock", Country: "US"},
	{Symbol: "VZ", Name: "Verizon Communications Inc.", Exchange: "NYSE", Type: "Common Stock", Country: "US"},
	{Symbol: "PLTR", Name: "Palantir Technologies Inc.", Exchange: "NYSE", Type: "Common Stock", Country: "US"},
}
