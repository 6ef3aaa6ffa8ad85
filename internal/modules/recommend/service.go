// README: Recommendation service: validates the query, fans out to the
// applicable providers, then merges, ranks, and truncates the results.
package recommend

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"wander/internal/providers"
	"wander/internal/types"
)

type Deps struct {
	// Restaurants, Events, and Places are the business-search, event-search,
	// and places-search providers, in that dispatch order.
	Restaurants Searcher
	Events      Searcher
	Places      Searcher
	MaxResults  int
	Logger      *slog.Logger
}

type Service struct {
	restaurants Searcher
	events      Searcher
	places      Searcher
	maxResults  int
	logger      *slog.Logger
}

func NewService(deps Deps) *Service {
	maxResults := deps.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		restaurants: deps.Restaurants,
		events:      deps.Events,
		places:      deps.Places,
		maxResults:  maxResults,
		logger:      logger,
	}
}

type upstreamCall struct {
	provider string
	search   Searcher
}

// Recommend resolves a query into at most maxResults items, ordered by
// descending rating. A missing location fails before any upstream call; an
// empty active-category filter yields an empty list without calling out.
// All applicable provider calls run concurrently and the first failure fails
// the whole request, cancelling its siblings.
func (s *Service) Recommend(ctx context.Context, q types.Query) ([]types.Recommendation, error) {
	if !q.HasLocation() {
		return nil, ErrMissingLocation
	}

	calls := s.dispatch(q)
	if len(calls) == 0 {
		return []types.Recommendation{}, nil
	}

	results := make([][]types.Recommendation, len(calls))
	g, gctx := errgroup.WithContext(ctx)
	for i, call := range calls {
		i, call := i, call
		g.Go(func() error {
			items, err := call.search.Search(gctx, q)
			if err != nil {
				s.logger.Error("upstream search failed",
					"provider", call.provider,
					"category", string(q.Category),
					"error", err,
				)
				return err
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]types.Recommendation, 0, s.maxResults)
	for _, items := range results {
		merged = append(merged, items...)
	}
	sortByRating(merged)
	return truncate(merged, s.maxResults), nil
}

// dispatch selects the upstream calls for the query's category. Exactly one
// call class is active per request today; the slice shape keeps room for
// concatenating multiple providers later without touching the fan-out.
func (s *Service) dispatch(q types.Query) []upstreamCall {
	switch q.Category {
	case types.CategoryRestaurants:
		if q.Cuisine == "" {
			return nil
		}
		return []upstreamCall{{provider: providers.Yelp, search: s.restaurants}}
	case types.CategoryEvents:
		if q.EventType == "" {
			return nil
		}
		return []upstreamCall{{provider: providers.Eventbrite, search: s.events}}
	case types.CategoryActivities:
		if q.EventType == "" {
			return nil
		}
		return []upstreamCall{{provider: providers.GooglePlaces, search: s.places}}
	}
	return nil
}
