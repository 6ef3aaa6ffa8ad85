// README: Google Places nearby search client; normalizes places into
// recommendation items (price level and photo media URL mapping).
package places

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"googlemaps.github.io/maps"

	"wander/internal/providers"
	"wander/internal/types"
)

const (
	photoURLFormat = "https://maps.googleapis.com/maps/api/place/photo?maxwidth=400&photoreference=%s&key=%s"
	detailURLBase  = "https://www.google.com/maps/place/?q=place_id:"
)

type Config struct {
	APIKey string
	// BaseURL overrides the Maps API host, for tests.
	BaseURL string
	Timeout time.Duration
	RateQPS float64
}

// Client wraps the Google Maps client for nearby place searches.
type Client struct {
	maps    *maps.Client
	apiKey  string
	limiter *rate.Limiter
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &providers.MissingCredentialError{Provider: providers.GooglePlaces}
	}
	opts := []maps.ClientOption{
		maps.WithAPIKey(cfg.APIKey),
		maps.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, maps.WithBaseURL(cfg.BaseURL))
	}
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &Client{
		maps:    client,
		apiKey:  cfg.APIKey,
		limiter: providers.NewLimiter(cfg.RateQPS),
	}, nil
}

// Search runs a nearby search with the query's event type lower-cased as the
// place type and returns normalized place items. A price level of 1-4 maps
// to a currency-symbol string of that length; the image URL is built from
// the first photo reference only when one exists.
func (c *Client) Search(ctx context.Context, q types.Query) ([]types.Recommendation, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	lat, err := strconv.ParseFloat(q.Latitude, 64)
	if err != nil {
		return nil, providers.ErrInvalidLocation
	}
	lng, err := strconv.ParseFloat(q.Longitude, 64)
	if err != nil {
		return nil, providers.ErrInvalidLocation
	}

	r := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: lat, Lng: lng},
		Radius:   uint(q.RadiusMeters),
		Type:     maps.PlaceType(strings.ToLower(q.EventType)),
	}

	resp, err := c.maps.NearbySearch(ctx, r)
	if err != nil {
		uerr := &providers.UpstreamError{Provider: providers.GooglePlaces, Message: err.Error()}
		providers.ObserveRequest(providers.GooglePlaces, uerr)
		return nil, uerr
	}
	providers.ObserveRequest(providers.GooglePlaces, nil)

	items := make([]types.Recommendation, 0, len(resp.Results))
	for _, p := range resp.Results {
		items = append(items, c.normalize(p))
	}
	return items, nil
}

func (c *Client) normalize(p maps.PlacesSearchResult) types.Recommendation {
	var rating *float64
	if p.Rating > 0 {
		// The maps library decodes ratings as float32; a plain widening
		// conversion turns an upstream 4.6 into 4.5999999046. Round-trip
		// through the shortest float32 decimal to recover the wire value.
		v, _ := strconv.ParseFloat(strconv.FormatFloat(float64(p.Rating), 'f', -1, 32), 64)
		rating = &v
	}
	var price string
	if p.PriceLevel > 0 {
		price = strings.Repeat("$", p.PriceLevel)
	}
	var imageURL string
	if len(p.Photos) > 0 && p.Photos[0].PhotoReference != "" {
		imageURL = fmt.Sprintf(photoURLFormat, p.Photos[0].PhotoReference, c.apiKey)
	}
	return types.Recommendation{
		ID:        p.PlaceID,
		Name:      p.Name,
		Kind:      types.KindPlace,
		Rating:    rating,
		Price:     price,
		ImageURL:  imageURL,
		DetailURL: detailURLBase + p.PlaceID,
		Location: types.Address{
			Address1: p.Vicinity,
		},
	}
}
