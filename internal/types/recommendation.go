// README: Common value objects shared across modules.
package types

// Category selects which upstream provider and filter field applies.
type Category string

const (
	CategoryRestaurants Category = "restaurants"
	CategoryEvents      Category = "events"
	CategoryActivities  Category = "activities"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryRestaurants, CategoryEvents, CategoryActivities:
		return true
	}
	return false
}

// Kind is the normalized kind of a recommendation item.
type Kind string

const (
	KindRestaurant Kind = "restaurant"
	KindEvent      Kind = "event"
	KindPlace      Kind = "place"
)

// Address holds the two location lines shown under an item. City is empty
// for providers that only expose a single vicinity line.
type Address struct {
	Address1 string `json:"address1"`
	City     string `json:"city"`
}

// Recommendation is the unified item shape every provider response is mapped
// into. IDs are provider-scoped and not unique across providers.
type Recommendation struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Kind      Kind     `json:"type"`
	Rating    *float64 `json:"rating"`
	Price     string   `json:"price,omitempty"`
	ImageURL  string   `json:"image_url,omitempty"`
	DetailURL string   `json:"url"`
	Location  Address  `json:"location"`
	// StartDate and EndDate are provider-local timestamps passed through
	// verbatim (not normalized to UTC). Events only.
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// Query is a normalized recommendation search. Latitude and longitude are
// decimal-degree strings as received from the browser geolocation API; both
// must be present before any upstream call is made.
type Query struct {
	Category     Category
	Cuisine      string
	Price        string
	RadiusMeters int
	EventType    string
	Latitude     string
	Longitude    string
}

func (q Query) HasLocation() bool {
	return q.Latitude != "" && q.Longitude != ""
}
