// README: Eventbrite event search client; normalizes events into
// recommendation items and applies the name denylist.
package eventbrite

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"wander/internal/providers"
	"wander/internal/types"
)

const (
	defaultBaseURL = "https://www.eventbriteapi.com"

	// venuePlaceholder is the address line used when the expanded venue
	// carries no street address.
	venuePlaceholder = "Location TBA"

	maxErrorBody = 2048
)

type Config struct {
	APIKey string
	// BaseURL overrides the Eventbrite API host, for tests.
	BaseURL string
	Timeout time.Duration
	// Denylist holds phrases that exclude an event when its name contains
	// any of them, case-insensitively.
	Denylist []string
	RateQPS  float64
}

// Client calls the Eventbrite event search API.
type Client struct {
	apiKey   string
	baseURL  string
	http     *http.Client
	limiter  *rate.Limiter
	denylist []string
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &providers.MissingCredentialError{Provider: providers.Eventbrite}
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	denylist := make([]string, 0, len(cfg.Denylist))
	for _, phrase := range cfg.Denylist {
		if p := strings.ToLower(strings.TrimSpace(phrase)); p != "" {
			denylist = append(denylist, p)
		}
	}
	return &Client{
		apiKey:   cfg.APIKey,
		baseURL:  baseURL,
		http:     &http.Client{Timeout: cfg.Timeout},
		limiter:  providers.NewLimiter(cfg.RateQPS),
		denylist: denylist,
	}, nil
}

// Search runs an event search with venue expansion and returns normalized
// event items. The radius is converted from meters to the provider's
// kilometer-suffixed distance unit. Ratings are always absent for events;
// start/end timestamps are provider-local and passed through verbatim.
func (c *Client) Search(ctx context.Context, q types.Query) ([]types.Recommendation, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("location.latitude", q.Latitude)
	params.Set("location.longitude", q.Longitude)
	params.Set("location.within", withinKm(q.RadiusMeters))
	params.Set("expand", "venue")
	params.Set("categories", q.EventType)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v3/events/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		uerr := &providers.UpstreamError{Provider: providers.Eventbrite, Message: err.Error()}
		providers.ObserveRequest(providers.Eventbrite, uerr)
		return nil, uerr
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		uerr := &providers.UpstreamError{
			Provider:   providers.Eventbrite,
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
		providers.ObserveRequest(providers.Eventbrite, uerr)
		return nil, uerr
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		uerr := &providers.UpstreamError{Provider: providers.Eventbrite, Message: "malformed response: " + err.Error()}
		providers.ObserveRequest(providers.Eventbrite, uerr)
		return nil, uerr
	}
	providers.ObserveRequest(providers.Eventbrite, nil)

	items := make([]types.Recommendation, 0, len(payload.Events))
	for _, ev := range payload.Events {
		if c.denylisted(ev.Name.Text) {
			continue
		}
		item := types.Recommendation{
			ID:        ev.ID,
			Name:      ev.Name.Text,
			Kind:      types.KindEvent,
			DetailURL: ev.URL,
			Location: types.Address{
				Address1: venuePlaceholder,
			},
			StartDate: ev.Start.Local,
			EndDate:   ev.End.Local,
		}
		if ev.Logo != nil {
			item.ImageURL = ev.Logo.URL
		}
		if ev.Venue != nil && ev.Venue.Address != nil {
			if ev.Venue.Address.Address1 != "" {
				item.Location.Address1 = ev.Venue.Address.Address1
			}
			item.Location.City = ev.Venue.Address.City
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *Client) denylisted(name string) bool {
	lower := strings.ToLower(name)
	for _, phrase := range c.denylist {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// withinKm renders a meter radius as the provider's "<n>km" distance value.
func withinKm(radiusMeters int) string {
	return strconv.FormatFloat(float64(radiusMeters)/1000, 'f', -1, 64) + "km"
}
