// README: Recommendations endpoint handler.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wander/internal/modules/recommend"
	"wander/internal/types"
)

type RecommendationsHandler struct {
	recommend *recommend.Service
	logger    *slog.Logger
}

func NewRecommendationsHandler(svc *recommend.Service, logger *slog.Logger) *RecommendationsHandler {
	return &RecommendationsHandler{recommend: svc, logger: logger}
}

// recommendationsRequest is the body the tabbed UI posts. Latitude and
// longitude arrive as strings straight from the browser geolocation form.
type recommendationsRequest struct {
	Cuisine   string `json:"cuisine"`
	Price     string `json:"price"`
	Radius    int    `json:"radius"`
	EventType string `json:"eventType"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	ActiveTab string `json:"activeTab"`
}

func (h *RecommendationsHandler) Create(c *gin.Context) {
	var req recommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	category := types.Category(req.ActiveTab)
	if !category.Valid() {
		writeError(c, http.StatusBadRequest, "invalid tab")
		return
	}

	items, err := h.recommend.Recommend(c.Request.Context(), types.Query{
		Category:     category,
		Cuisine:      req.Cuisine,
		Price:        req.Price,
		RadiusMeters: req.Radius,
		EventType:    req.EventType,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	})
	if err != nil {
		h.logger.Error("recommendations request failed",
			"tab", req.ActiveTab,
			"error", err,
		)
		writeRecommendError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, items)
}
