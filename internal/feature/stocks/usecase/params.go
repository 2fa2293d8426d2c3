package usecase

const (
	// DefaultPeriod is used when the caller passes no or an unknown period.
	DefaultPeriod = "1mo"
	// DefaultChartInterval is used when the caller passes no or an unknown interval.
	DefaultChartInterval = "1d"
)

// validPeriods is the accepted set of chart lookback windows.
var validPeriods = map[string]struct{}{
	"1d": {}, "5d": {}, "1mo": {}, "3mo": {}, "6mo": {},
	"1y": {}, "2y": {}, "5y": {}, "10y": {}, "ytd": {}, "max": {},
}

// validIntervals is the accepted set of chart bar widths.
var validIntervals = map[string]struct{}{
	"1m": {}, "2m": {}, "5m": {}, "15m": {}, "30m": {}, "60m": {}, "90m": {},
	"1h": {}, "1d": {}, "5d": {}, "1wk": {}, "1mo": {}, "3mo": {},
}

func normalizePeriod(period string) string {
	if _, ok := validPeriods[period]; !ok {
		return DefaultPeriod
	}
	return period
}

func normalizeInterval(interval string) string {
	if _, ok := validIntervals[interval]; !ok {
		return DefaultChartInterval
	}
	return interval
}
