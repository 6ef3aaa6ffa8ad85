package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.HTTP.Addr)
	}
	if cfg.Providers.Timeout != 10*time.Second {
		t.Errorf("timeout = %v, want 10s", cfg.Providers.Timeout)
	}
	if cfg.Recommend.MaxResults != 20 {
		t.Errorf("max results = %d, want 20", cfg.Recommend.MaxResults)
	}
	if cfg.Recommend.QualityFloor != 4.0 {
		t.Errorf("quality floor = %v, want 4.0", cfg.Recommend.QualityFloor)
	}
	if len(cfg.Recommend.EventDenylist) != 3 {
		t.Errorf("denylist = %v, want 3 default phrases", cfg.Recommend.EventDenylist)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WANDER_HTTP_ADDR", ":9090")
	t.Setenv("WANDER_PROVIDER_TIMEOUT", "3s")
	t.Setenv("WANDER_MAX_RESULTS", "5")
	t.Setenv("WANDER_EVENT_DENYLIST", "karaoke, silent disco")
	t.Setenv("YELP_API_KEY", "yelp-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("addr = %q, want :9090", cfg.HTTP.Addr)
	}
	if cfg.Providers.Timeout != 3*time.Second {
		t.Errorf("timeout = %v, want 3s", cfg.Providers.Timeout)
	}
	if cfg.Recommend.MaxResults != 5 {
		t.Errorf("max results = %d, want 5", cfg.Recommend.MaxResults)
	}
	want := []string{"karaoke", "silent disco"}
	if len(cfg.Recommend.EventDenylist) != len(want) {
		t.Fatalf("denylist = %v, want %v", cfg.Recommend.EventDenylist, want)
	}
	for i, phrase := range want {
		if cfg.Recommend.EventDenylist[i] != phrase {
			t.Errorf("denylist[%d] = %q, want %q", i, cfg.Recommend.EventDenylist[i], phrase)
		}
	}
	if cfg.Providers.YelpAPIKey != "yelp-secret" {
		t.Errorf("yelp key = %q", cfg.Providers.YelpAPIKey)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("WANDER_MAX_RESULTS", "not-a-number")
	t.Setenv("WANDER_PROVIDER_TIMEOUT", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Recommend.MaxResults != 20 {
		t.Errorf("max results = %d, want default 20", cfg.Recommend.MaxResults)
	}
	if cfg.Providers.Timeout != 10*time.Second {
		t.Errorf("timeout = %v, want default 10s", cfg.Providers.Timeout)
	}
}
