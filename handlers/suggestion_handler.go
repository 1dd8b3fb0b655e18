package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/jalanjalan/jalanjalan-backend/errors"
	"github.com/jalanjalan/jalanjalan-backend/services"
)

// SuggestionHandler exposes day-plan suggestions.
type SuggestionHandler struct {
	suggestions *services.SuggestionService
}

// NewSuggestionHandler creates a SuggestionHandler.
func NewSuggestionHandler(suggestions *services.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestions: suggestions}
}

// SuggestDayPlan handles GET /v1/suggestions?region=...&tags=a,b.
// An empty stops array is a normal response, not an error: the client
// renders its "no attractions found" state.
func (h *SuggestionHandler) SuggestDayPlan(c *gin.Context) {
	region := c.Query("region")
	if region == "" {
		_ = c.Error(apperrors.ValidationFailed("region is required", "pass ?region=<name>"))
		return
	}

	var tags []string
	if raw := c.Query("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	stops, err := h.suggestions.SuggestDayPlan(c.Request.Context(), region, tags)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"region": region,
		"stops":  stops,
	})
}
