// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wander/internal/http/handlers"
	"wander/internal/http/middleware"
	"wander/internal/modules/recommend"
)

type ServerDeps struct {
	Recommend   *recommend.Service
	Logger      *slog.Logger
	CORSOrigins []string
}

type Server struct {
	recommend   *recommend.Service
	logger      *slog.Logger
	corsOrigins []string
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		recommend:   deps.Recommend,
		logger:      deps.Logger,
		corsOrigins: deps.CORSOrigins,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(
		middleware.Recovery(s.logger),
		middleware.RequestLogger(s.logger),
		middleware.Metrics(),
		middleware.CORS(s.corsOrigins),
	)

	recommendationsHandler := handlers.NewRecommendationsHandler(s.recommend, s.logger)
	r.POST("/api/recommendations", recommendationsHandler.Create)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
