package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/jalanjalan/jalanjalan-backend/errors"
	"github.com/jalanjalan/jalanjalan-backend/internal/store"
)

// POIHandler exposes read access to the point-of-interest catalogue.
type POIHandler struct {
	poiStore store.POIStore
}

// NewPOIHandler creates a POIHandler.
func NewPOIHandler(poiStore store.POIStore) *POIHandler {
	return &POIHandler{poiStore: poiStore}
}

// ListPOIs handles GET /v1/pois?region=...&tags=a,b&limit=n.
func (h *POIHandler) ListPOIs(c *gin.Context) {
	query := store.POIQuery{Region: c.Query("region")}
	if raw := c.Query("tags"); raw != "" {
		query.Tags = strings.Split(raw, ",")
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			_ = c.Error(apperrors.ValidationFailed("Invalid limit", raw))
			return
		}
		query.Limit = limit
	}

	pois, err := h.poiStore.ListPOIs(c.Request.Context(), query)
	if err != nil {
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"pois": pois})
}

// GetPOI handles GET /v1/pois/:poiId.
func (h *POIHandler) GetPOI(c *gin.Context) {
	id := c.Param("poiId")
	poi, err := h.poiStore.GetPOI(c.Request.Context(), id)
	if err != nil {
		if err == store.ErrNotFound {
			_ = c.Error(apperrors.NotFound("Point of interest", id))
		} else {
			_ = c.Error(apperrors.NewDatabaseError(err))
		}
		return
	}
	c.JSON(http.StatusOK, poi)
}
