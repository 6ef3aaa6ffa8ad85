// README: Entry point; loads config, wires provider clients and the
// recommendation service, starts the HTTP server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"wander/internal/config"
	httptransport "wander/internal/http"
	"wander/internal/modules/recommend"
	"wander/internal/providers/eventbrite"
	"wander/internal/providers/places"
	"wander/internal/providers/yelp"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Credentials are validated eagerly: a missing key refuses to serve
	// instead of surfacing later as an opaque upstream 401.
	yelpClient, err := yelp.NewClient(yelp.Config{
		APIKey:       cfg.Providers.YelpAPIKey,
		Timeout:      cfg.Providers.Timeout,
		QualityFloor: cfg.Recommend.QualityFloor,
		RateQPS:      cfg.Providers.RateQPS,
	})
	if err != nil {
		logger.Error("yelp client init failed", "error", err)
		os.Exit(1)
	}

	eventbriteClient, err := eventbrite.NewClient(eventbrite.Config{
		APIKey:   cfg.Providers.EventbriteAPIKey,
		Timeout:  cfg.Providers.Timeout,
		Denylist: cfg.Recommend.EventDenylist,
		RateQPS:  cfg.Providers.RateQPS,
	})
	if err != nil {
		logger.Error("eventbrite client init failed", "error", err)
		os.Exit(1)
	}

	placesClient, err := places.NewClient(places.Config{
		APIKey:  cfg.Providers.GooglePlacesAPIKey,
		Timeout: cfg.Providers.Timeout,
		RateQPS: cfg.Providers.RateQPS,
	})
	if err != nil {
		logger.Error("places client init failed", "error", err)
		os.Exit(1)
	}

	recommendSvc := recommend.NewService(recommend.Deps{
		Restaurants: yelpClient,
		Events:      eventbriteClient,
		Places:      placesClient,
		MaxResults:  cfg.Recommend.MaxResults,
		Logger:      logger,
	})

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Recommend:   recommendSvc,
		Logger:      logger,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("wander api listening", "addr", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
