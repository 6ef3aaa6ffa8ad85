// README: Shared plumbing for the upstream search providers: typed errors,
// client-side rate limiting, and request metrics.
package providers

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"
)

// Provider names used in errors, logs, and metric labels.
const (
	Yelp         = "yelp"
	Eventbrite   = "eventbrite"
	GooglePlaces = "google_places"
)

// ErrInvalidLocation marks coordinates that are present but not parseable as
// decimal degrees. Surfaced to the caller as a client input error.
var ErrInvalidLocation = errors.New("invalid location")

// UpstreamError is a failed provider call: non-success status, network
// error, or malformed body. Message may contain raw upstream text and is
// for logs only; it must never be echoed to the client.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: upstream returned status %d: %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: upstream call failed: %s", e.Provider, e.Message)
}

// MissingCredentialError is returned by client constructors when the
// provider credential is absent, so startup fails with a clear message
// instead of every request dying on an opaque upstream 401.
type MissingCredentialError struct {
	Provider string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s: missing API credential", e.Provider)
}

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "wander_provider_requests_total",
	Help: "Upstream provider requests by provider and outcome.",
}, []string{"provider", "outcome"})

// ObserveRequest records the outcome of one upstream call.
func ObserveRequest(provider string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	requestsTotal.WithLabelValues(provider, outcome).Inc()
}

// NewLimiter builds the per-client rate limiter honoring the provider's
// published request budget. qps <= 0 disables limiting.
func NewLimiter(qps float64) *rate.Limiter {
	if qps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := int(qps)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(qps), burst)
}
