// README: Yelp business search client; normalizes businesses into
// recommendation items and applies the restaurant quality floor.
package yelp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"wander/internal/providers"
	"wander/internal/types"
)

const (
	defaultBaseURL = "https://api.yelp.com"

	// searchLimit is the provider-side result cap per request.
	searchLimit = 10

	// maxErrorBody bounds how much of an upstream error body we keep for logs.
	maxErrorBody = 2048
)

type Config struct {
	APIKey string
	// BaseURL overrides the Yelp API host, for tests.
	BaseURL string
	Timeout time.Duration
	// QualityFloor is the minimum rating a business must have to be included.
	QualityFloor float64
	RateQPS      float64
}

// Client calls the Yelp business search API.
type Client struct {
	apiKey       string
	baseURL      string
	http         *http.Client
	limiter      *rate.Limiter
	qualityFloor float64
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &providers.MissingCredentialError{Provider: providers.Yelp}
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:       cfg.APIKey,
		baseURL:      baseURL,
		http:         &http.Client{Timeout: cfg.Timeout},
		limiter:      providers.NewLimiter(cfg.RateQPS),
		qualityFloor: cfg.QualityFloor,
	}, nil
}

// Search runs a business search sorted by rating and returns normalized
// restaurant items. Businesses below the quality floor are dropped in place,
// preserving the provider's relative order.
func (c *Client) Search(ctx context.Context, q types.Query) ([]types.Recommendation, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	term := q.Cuisine
	if term == "" {
		term = "restaurants"
	}
	price := q.Price
	if price == "" {
		price = "1,2,3,4"
	}

	params := url.Values{}
	params.Set("term", term)
	params.Set("latitude", q.Latitude)
	params.Set("longitude", q.Longitude)
	params.Set("radius", strconv.Itoa(q.RadiusMeters))
	params.Set("price", price)
	params.Set("sort_by", "rating")
	params.Set("limit", strconv.Itoa(searchLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v3/businesses/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		uerr := &providers.UpstreamError{Provider: providers.Yelp, Message: err.Error()}
		providers.ObserveRequest(providers.Yelp, uerr)
		return nil, uerr
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		uerr := &providers.UpstreamError{
			Provider:   providers.Yelp,
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
		providers.ObserveRequest(providers.Yelp, uerr)
		return nil, uerr
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		uerr := &providers.UpstreamError{Provider: providers.Yelp, Message: "malformed response: " + err.Error()}
		providers.ObserveRequest(providers.Yelp, uerr)
		return nil, uerr
	}
	providers.ObserveRequest(providers.Yelp, nil)

	items := make([]types.Recommendation, 0, len(payload.Businesses))
	for _, b := range payload.Businesses {
		if b.Rating == nil || *b.Rating < c.qualityFloor {
			continue
		}
		items = append(items, types.Recommendation{
			ID:        b.ID,
			Name:      b.Name,
			Kind:      types.KindRestaurant,
			Rating:    b.Rating,
			Price:     b.Price,
			ImageURL:  b.ImageURL,
			DetailURL: b.URL,
			Location: types.Address{
				Address1: b.Location.Address1,
				City:     b.Location.City,
			},
		})
	}
	return items, nil
}
