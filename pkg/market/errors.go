package market

import (
	"errors"
	"fmt"
)

// Common error variables returned across the library. Callers classify
// failures with errors.Is; every wrapped instance carries the URL or the
// offending identifier in its message.
var (
	// ErrTimeout is returned when a fetch exceeds the configured timeout.
	ErrTimeout = errors.New("request exceeded the configured timeout")

	// ErrRateLimited is returned when the upstream answers HTTP 429.
	ErrRateLimited = errors.New("rate limited by upstream")

	// ErrNotFound is returned when the upstream answers HTTP 404,
	// typically meaning an unresolved or stale slug.
	ErrNotFound = errors.New("resource not found upstream")

	// ErrInvalidArgument is returned when the caller supplies an unknown
	// currency or exchange identifier, or an unsupported logo size.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSchemaDrift flags an internal invariant violation: a value the
	// library derived itself (a cached slug, a known-convertible symbol,
	// an extraction marker) was rejected by or missing from upstream.
	// It means the extraction heuristics are out of sync with the site
	// and must be reported loudly, never swallowed.
	ErrSchemaDrift = errors.New("upstream schema drift detected")
)

// HTTPError reports a non-200 status that has no dedicated classification.
// It keeps the status and URL so a failure can be diagnosed without
// re-running with tracing enabled.
type HTTPError struct {
	StatusCode int
	URL        string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d fetching %s", e.StatusCode, e.URL)
}
