// README: Recommendation aggregator module: domain errors and the provider
// contract the service dispatches against.
package recommend

import (
	"context"
	"errors"

	"wander/internal/types"
)

// DefaultMaxResults is the fixed top-N cutoff applied after ranking.
const DefaultMaxResults = 20

// ErrMissingLocation rejects a query whose latitude or longitude is absent.
// No upstream call is made in that case.
var ErrMissingLocation = errors.New("location is required")

// Searcher is one upstream provider. Implementations own their full
// request/response cycle: credentials, timeout, rate limit, normalization,
// and provider-specific filtering.
type Searcher interface {
	Search(ctx context.Context, q types.Query) ([]types.Recommendation, error)
}
