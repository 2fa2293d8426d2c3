package staticdata

import "stock_dashboard/internal/feature/stocks/domain/entity"

// fixture bundles the snapshot served for one symbol in degraded mode.
type fixture struct {
	quote             entity.Quote
	financials        entity.FinancialData
	profile           entity.CompanyProfile
	quarterlyDividend float64
}

// fixtures covers the symbols the dashboard lists by default. Figures are
// rounded public numbers, good enough to keep the UI populated.
var fixtures = map[string]fixture{
	"AAPL": {
		quote: entity.Quote{
			Name: "Apple Inc.", Exchange: "NASDAQ", Currency: "USD",
			Sector: "Technology", Industry: "Consumer Electronics",
			CurrentPrice: 175.50, PreviousClose: 174.20, High: 176.80, Low: 173.90,
			Volume: 52_000_000, AvgVolume: 58_000_000, MarketCap: 2.75e12,
			PERatio: 28.5, DividendYield: 0.0052, Beta: 1.25,
			FiftyTwoWeekHigh: 199.62, FiftyTwoWeekLow: 164.08,
		},
		financials: entity.FinancialData{
			Period: "2024-09-28", Revenue: 3.91e11, NetIncome: 9.37e10, OperatingIncome: 1.23e11,
		},
		profile: entity.CompanyProfile{
			Country: "United States", Website: "https://www.apple.com", Employees: 164_000,
			OriginalDescription: "Apple Inc. designs, manufactures and markets smartphones, personal computers, tablets, wearables and accessories worldwide.",
		},
		quarterlyDividend: 0.24,
	},
	"MSFT": {
		quote: entity.Quote{
			Name: "Microsoft Corporation", Exchange: "NASDAQ", Currency: "USD",
			Sector: "Technology", Industry: "Software - Infrastructure",
			CurrentPrice: 420.30, PreviousClose: 417.80, High: 423.10, Low: 416.50,
			Volume: 21_000_000, AvgVolume: 24_000_000, MarketCap: 3.12e12,
			PERatio: 35.2, DividendYield: 0.0072, Beta: 0.92,
			FiftyTwoWeekHigh: 430.82, FiftyTwoWeekLow: 309.45,
		},
		financials: entity.FinancialData{
			Period: "2024-06-30", Revenue: 2.45e11, NetIncome: 8.81e10, OperatingIncome: 1.09e11,
		},
		profile: entity.CompanyProfile{
			Country: "United States", Website: "https://www.microsoft.com", Employees: 221_000,
			OriginalDescription: "Microsoft Corporation develops and supports software, services, devices and solutions worldwide.",
		},
		quarterlyDividend: 0.75,
	},
	"GOOGL": {
		quote: entity.Quote{
			Name: "Alphabet Inc.", Exchange: "NASDAQ", Currency: "USD",
			Sector: "Communication Services", Industry: "Internet Content & Information",
			CurrentPrice: 155.20, PreviousClose: 153.90, High: 156.40, Low: 153.10,
			Volume: 28_000_000, AvgVolume: 31_000_000, MarketCap: 1.95e12,
			PERatio: 24.1, DividendYield: 0, Beta: 1.05,
			FiftyTwoWeekHigh: 163.17, FiftyTwoWeekLow: 115.35,
		},
		financials: entity.FinancialData{
			Period: "2024-12-31", Revenue: 3.50e11, NetIncome: 1.00e11, OperatingIncome: 1.12e11,
		},
		profile: entity.CompanyProfile{
			Country: "United States", Website: "https://abc.xyz", Employees: 182_000,
			OriginalDescription: "Alphabet Inc. offers various products and platforms including Search, YouTube, Android, Chrome and Google Cloud.",
		},
	},
	"AMZN": {
		quote: entity.Quote{
			Name: "Amazon.com, Inc.", Exchange: "NASDAQ", Currency: "USD",
			Sector: "Consumer Cyclical", Industry: "Internet Retail",
			CurrentPrice: 178.90, PreviousClose: 177.30, High: 180.20, Low: 176.80,
			Volume: 41_000_000, AvgVolume: 45_000_000, MarketCap: 1.86e12,
			PERatio: 42.7, DividendYield: 0, Beta: 1.16,
			FiftyTwoWeekHigh: 189.77, FiftyTwoWeekLow: 118.35,
		},
		financials: entity.FinancialData{
			Period: "2024-12-31", Revenue: 6.38e11, NetIncome: 5.92e10, OperatingIncome: 6.86e10,
		},
		profile: entity.CompanyProfile{
			Country: "United States", Website: "https://www.amazon.com", Employees: 1_556_000,
			OriginalDescription: "Amazon.com, Inc. engages in the retail sale of consumer products, advertising and subscription services, and provides cloud computing through AWS.",
		},
	},
	"TSLA": {
		quote: entity.Quote{
			Name: "Tesla, Inc.", Exchange: "NASDAQ", Currency: "USD",
			Sector: "Consumer Cyclical", Industry: "Auto Manufacturers",
			CurrentPrice: 248.50, PreviousClose: 251.20, High: 253.80, Low: 246.10,
			Volume: 95_000_000, AvgVolume: 102_000_000, MarketCap: 7.9e11,
			PERatio: 71.3, DividendYield: 0, Beta: 2.31,
			FiftyTwoWeekHigh: 299.29, FiftyTwoWeekLow: 138.80,
		},
		financials: entity.FinancialData{
			Period: "2024-12-31", Revenue: 9.77e10, NetIncome: 7.09e9, OperatingIncome: 7.08e9,
		},
		profile: entity.CompanyProfile{
			Country: "United States", Website: "https://www.tesla.com", Employees: 140_000,
			OriginalDescription: "Tesla, Inc. designs, develops, manufactures and sells electric vehicles and energy generation and storage systems.",
		},
	},
	"META": {
		quote: entity.Quote{
			Name: "Meta Platforms, Inc.", Exchange: "NASDAQ", Currency: "USD",
			Sector: "Communication Services", Industry: "Internet Content & Information",
			CurrentPrice: 485.60, PreviousClose: 481.20, High: 489.30, Low: 479.50,
			Volume: 15_000_000, AvgVolume: 18_000_000, MarketCap: 1.23e12,
			PERatio: 27.9, DividendYield: 0.0041, Beta: 1.21,
			FiftyTwoWeekHigh: 531.49, FiftyTwoWeekLow: 279.40,
		},
		financials: entity.FinancialData{
			Period: "2024-12-31", Revenue: 1.65e11, NetIncome: 6.24e10, OperatingIncome: 6.94e10,
		},
		profile: entity.CompanyProfile{
			Country: "United States", Website: "https://about.meta.com", Employees: 74_000,
			OriginalDescription: "Meta Platforms, Inc. builds products that enable people to connect through mobile devices, personal computers and wearables.",
		},
		quarterlyDividend: 0.50,
	},
	"NVDA": {
		quote: entity.Quote{
			Name: "NVIDIA Corporation", Exchange: "NASDAQ", Currency: "USD",
			Sector: "Technology", Industry: "Semiconductors",
			CurrentPrice: 118.40, PreviousClose: 116.90, High: 120.10, Low: 116.20,
			Volume: 310_000_000, AvgVolume: 330_000_000, MarketCap: 2.91e12,
			PERatio: 55.8, DividendYield: 0.0003, Beta: 1.67,
			FiftyTwoWeekHigh: 140.76, FiftyTwoWeekLow: 39.23,
		},
		financials: entity.FinancialData{
			Period: "2025-01-26", Revenue: 1.30e11, NetIncome: 7.28e10, OperatingIncome: 8.14e10,
		},
		profile: entity.CompanyProfile{
			Country: "United States", Website: "https://www.nvidia.com", Employees: 29_600,
			OriginalDescription: "NVIDIA Corporation provides graphics, compute and networking solutions for gaming, data centers and automotive markets.",
		},
		quarterlyDividend: 0.01,
	},
	"JPM": {
		quote: entity.Quote{
			Name: "JPMorgan Chase & Co.", Exchange: "NYSE", Currency: "USD",
			Sector: "Financial Services", Industry: "Banks - Diversified",
			CurrentPrice: 198.70, PreviousClose: 197.40, High: 200.10, Low: 196.80,
			Volume: 8_500_000, AvgVolume: 9_200_000, MarketCap: 5.7e11,
			PERatio: 12.1, DividendYield: 0.0232, Beta: 1.10,
			FiftyTwoWeekHigh: 217.04, FiftyTwoWeekLow: 135.19,
		},
		financials: entity.FinancialData{
			Period: "2024-12-31", Revenue: 1.78e11, NetIncome: 5.85e10, OperatingIncome: 7.32e10,
		},
		profile: entity.CompanyProfile{
			Country: "United States", Website: "https://www.jpmorganchase.com", Employees: 310_000,
			OriginalDescription: "JPMorgan Chase & Co. operates as a financial services company, providing investment banking, consumer banking and asset management worldwide.",
		},
		quarterlyDividend: 1.15,
	},
}
