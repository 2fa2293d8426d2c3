// Package domain defines domain-level errors for the stocks feature.
package domain

import "errors"

// Errors returned by market data providers and the stocks usecase.
// Every data-fetch path reports failures through exactly one of these,
// so callers get a single contract instead of a mix of nils, panics and
// empty slices.
var (
	// ErrSymbolNotFound indicates the upstream provider has no data for the
	// requested symbol. It is authoritative: a not-found from the live
	// provider is never masked by fallback data.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrRateLimited indicates the upstream provider rejected the call with
	// a rate-limit response. Callers may retry with backoff.
	ErrRateLimited = errors.New("upstream rate limit exceeded")

	// ErrUpstreamUnavailable indicates a transport failure or provider-side
	// error that is not a rate limit.
	ErrUpstreamUnavailable = errors.New("market data provider unavailable")

	// ErrInvalidIndex indicates an unknown index name was requested.
	ErrInvalidIndex = errors.New("invalid index name")
)
