// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wander/internal/modules/recommend"
	"wander/internal/providers"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeRecommendError maps aggregator failures to HTTP statuses. Upstream
// detail stays in the logs; the client only ever sees a generic message.
func writeRecommendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, recommend.ErrMissingLocation),
		errors.Is(err, providers.ErrInvalidLocation):
		writeError(c, http.StatusBadRequest, "Location is required")
	default:
		writeError(c, http.StatusInternalServerError, "failed to fetch recommendations")
	}
}
