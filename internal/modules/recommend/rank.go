package recommend

import (
	"sort"

	"wander/internal/types"
)

// sortByRating stable-sorts items descending by rating. An absent rating
// orders as zero; the stored field is never touched.
func sortByRating(items []types.Recommendation) {
	sort.SliceStable(items, func(i, j int) bool {
		return ratingOrZero(items[i]) > ratingOrZero(items[j])
	})
}

func ratingOrZero(r types.Recommendation) float64 {
	if r.Rating == nil {
		return 0
	}
	return *r.Rating
}

func truncate(items []types.Recommendation, n int) []types.Recommendation {
	if len(items) > n {
		return items[:n]
	}
	return items
}
