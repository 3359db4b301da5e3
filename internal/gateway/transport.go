package gateway

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// pacedTransport wraps a RoundTripper and keeps the request rate within a limit.
type pacedTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

// newPacedTransport returns base unchanged when perSecond is not positive.
func newPacedTransport(base http.RoundTripper, perSecond float64) http.RoundTripper {
	if perSecond <= 0 {
		return base
	}
	return &pacedTransport{
		base:    base,
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

// RoundTrip blocks until the limiter admits the request, then delegates to base.
func (t *pacedTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(r.Context()); err != nil {
		return nil, fmt.Errorf("failed to wait for request limiter: %w", err)
	}
	return t.base.RoundTrip(r)
}
