// README: Config loader with env defaults for HTTP, providers, and ranking.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type ProviderConfig struct {
	YelpAPIKey         string
	EventbriteAPIKey   string
	GooglePlacesAPIKey string
	// Timeout bounds each upstream call; upstream specifies none, so an
	// unbounded call would stall the whole request.
	Timeout time.Duration
	RateQPS float64
}

type RecommendConfig struct {
	MaxResults    int
	QualityFloor  float64
	EventDenylist []string
}

type Config struct {
	HTTP struct {
		Addr        string
		CORSOrigins []string
	}
	Providers ProviderConfig
	Recommend RecommendConfig
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("WANDER_HTTP_ADDR", ":8080")
	cfg.HTTP.CORSOrigins = envOrDefaultList("WANDER_CORS_ORIGINS", []string{"http://localhost:3000"})
	cfg.Providers.YelpAPIKey = os.Getenv("YELP_API_KEY")
	cfg.Providers.EventbriteAPIKey = os.Getenv("EVENTBRITE_API_KEY")
	cfg.Providers.GooglePlacesAPIKey = os.Getenv("GOOGLE_PLACES_API_KEY")
	cfg.Providers.Timeout = envOrDefaultDuration("WANDER_PROVIDER_TIMEOUT", 10*time.Second)
	cfg.Providers.RateQPS = envOrDefaultFloat("WANDER_PROVIDER_QPS", 5.0)
	cfg.Recommend.MaxResults = envOrDefaultInt("WANDER_MAX_RESULTS", 20)
	cfg.Recommend.QualityFloor = envOrDefaultFloat("WANDER_QUALITY_FLOOR", 4.0)
	cfg.Recommend.EventDenylist = envOrDefaultList("WANDER_EVENT_DENYLIST",
		[]string{"pub crawl", "bar crawl", "drag brunch"})
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func envOrDefaultList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
