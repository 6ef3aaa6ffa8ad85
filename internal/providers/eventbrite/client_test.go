package eventbrite

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wander/internal/providers"
	"wander/internal/types"
)

const searchFixture = `{
  "events": [
    {
      "id": "ev-1",
      "name": {"text": "Jazz Night"},
      "url": "https://events.example/ev-1",
      "logo": {"url": "https://img.example/ev-1.jpg"},
      "venue": {"address": {"address_1": "55 Music Ave", "city": "New York"}},
      "start": {"local": "2026-09-04T19:00:00"},
      "end": {"local": "2026-09-04T23:00:00"}
    },
    {
      "id": "ev-2",
      "name": {"text": "Downtown Pub Crawl Night"},
      "url": "https://events.example/ev-2",
      "start": {"local": "2026-09-05T20:00:00"},
      "end": {"local": "2026-09-06T01:00:00"}
    },
    {
      "id": "ev-3",
      "name": {"text": "Rooftop Poetry Reading"},
      "url": "https://events.example/ev-3",
      "venue": {"address": null},
      "start": {"local": "2026-09-06T18:00:00"},
      "end": {"local": "2026-09-06T20:00:00"}
    }
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		APIKey:   "test-token",
		BaseURL:  server.URL,
		Denylist: []string{"pub crawl", "bar crawl", "drag brunch"},
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func testQuery() types.Query {
	return types.Query{
		Category:     types.CategoryEvents,
		EventType:    "103",
		RadiusMeters: 2000,
		Latitude:     "40.7128",
		Longitude:    "-74.0060",
	}
}

func TestNewClient_MissingCredential(t *testing.T) {
	_, err := NewClient(Config{})
	var missing *providers.MissingCredentialError
	if !errors.As(err, &missing) {
		t.Fatalf("got error %v, want MissingCredentialError", err)
	}
	if missing.Provider != providers.Eventbrite {
		t.Errorf("error carries provider %q, want %q", missing.Provider, providers.Eventbrite)
	}
}

func TestSearch_DenylistAndNormalization(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchFixture))
	})

	got, err := client.Search(context.Background(), testQuery())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The pub crawl is excluded by name; the other two remain.
	if len(got) != 2 {
		t.Fatalf("got %d items, want 2", len(got))
	}

	jazz := got[0]
	if jazz.ID != "ev-1" || jazz.Name != "Jazz Night" {
		t.Fatalf("first item = %+v, want Jazz Night", jazz)
	}
	if jazz.Kind != types.KindEvent {
		t.Errorf("kind = %q, want event", jazz.Kind)
	}
	if jazz.Rating != nil {
		t.Errorf("event rating must be absent, got %v", *jazz.Rating)
	}
	if jazz.ImageURL != "https://img.example/ev-1.jpg" {
		t.Errorf("image url = %q", jazz.ImageURL)
	}
	if jazz.Location.Address1 != "55 Music Ave" || jazz.Location.City != "New York" {
		t.Errorf("location = %+v", jazz.Location)
	}
	// Provider-local timestamps pass through verbatim.
	if jazz.StartDate != "2026-09-04T19:00:00" || jazz.EndDate != "2026-09-04T23:00:00" {
		t.Errorf("dates = %q / %q", jazz.StartDate, jazz.EndDate)
	}

	// Missing venue address falls back to the placeholder.
	poetry := got[1]
	if poetry.ID != "ev-3" {
		t.Fatalf("second item = %q, want ev-3", poetry.ID)
	}
	if poetry.Location.Address1 != "Location TBA" {
		t.Errorf("address = %q, want Location TBA", poetry.Location.Address1)
	}
	if poetry.Location.City != "" {
		t.Errorf("city = %q, want empty", poetry.Location.City)
	}
}

func TestSearch_DenylistIsCaseInsensitive(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"events": [
			{"id": "ev-9", "name": {"text": "THE ULTIMATE BAR CRAWL"}, "url": "https://events.example/ev-9",
			 "start": {"local": ""}, "end": {"local": ""}}
		]}`))
	})

	got, err := client.Search(context.Background(), testQuery())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d items, want 0", len(got))
	}
}

func TestSearch_RequestParams(t *testing.T) {
	var gotPath, gotAuth string
	var gotParams map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotParams = r.URL.Query()
		w.Write([]byte(`{"events": []}`))
	})

	if _, err := client.Search(context.Background(), testQuery()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/v3/events/search" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("authorization = %q", gotAuth)
	}
	want := map[string]string{
		"location.latitude":  "40.7128",
		"location.longitude": "-74.0060",
		"location.within":    "2km",
		"expand":             "venue",
		"categories":         "103",
	}
	for key, val := range want {
		if len(gotParams[key]) == 0 || gotParams[key][0] != val {
			t.Errorf("param %s = %v, want %q", key, gotParams[key], val)
		}
	}
}

func TestWithinKm(t *testing.T) {
	tests := []struct {
		meters int
		want   string
	}{
		{1000, "1km"},
		{2500, "2.5km"},
		{500, "0.5km"},
		{10000, "10km"},
	}
	for _, tt := range tests {
		if got := withinKm(tt.meters); got != tt.want {
			t.Errorf("withinKm(%d) = %q, want %q", tt.meters, got, tt.want)
		}
	}
}

func TestSearch_UpstreamErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "INVALID_AUTH", "error_description": "token expired"}`))
	})

	_, err := client.Search(context.Background(), testQuery())
	var upstream *providers.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("got error %v, want UpstreamError", err)
	}
	if upstream.Provider != providers.Eventbrite || upstream.StatusCode != http.StatusUnauthorized {
		t.Errorf("got %+v", upstream)
	}
}
