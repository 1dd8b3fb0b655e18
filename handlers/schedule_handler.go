package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/jalanjalan/jalanjalan-backend/errors"
	"github.com/jalanjalan/jalanjalan-backend/logger"
	"github.com/jalanjalan/jalanjalan-backend/services"
	"github.com/jalanjalan/jalanjalan-backend/types"
)

// ScheduleHandler exposes the per-trip schedule: activity CRUD and the
// assembled itinerary view.
type ScheduleHandler struct {
	schedules *services.ScheduleService
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(schedules *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

// InsertActivityRequest is the request body for scheduling an activity.
type InsertActivityRequest struct {
	ID            string               `json:"id,omitempty"`
	Name          string               `json:"name" binding:"required"`
	Origin        types.ActivityOrigin `json:"origin" binding:"required"`
	POIID         string               `json:"poiId,omitempty"`
	Region        string               `json:"region,omitempty"`
	Latitude      float64              `json:"latitude,omitempty"`
	Longitude     float64              `json:"longitude,omitempty"`
	Day           int                  `json:"day,omitempty"`
	StartTime     string               `json:"startTime,omitempty"`
	DurationHours float64              `json:"durationHours,omitempty"`
	ShopIDs       []string             `json:"shopIds,omitempty"`
	Notes         string               `json:"notes,omitempty"`
}

// InsertActivity handles POST /v1/trips/:id/activities. A slot conflict is
// reported in the 200 body, not as an HTTP error: the activity is scheduled
// either way and the client prompts the user to move it.
func (h *ScheduleHandler) InsertActivity(c *gin.Context) {
	log := logger.GetLogger()

	var req InsertActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Errorw("Invalid request body", "error", err)
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return
	}
	if !req.Origin.IsValid() {
		_ = c.Error(apperrors.ValidationFailed("Invalid activity origin", string(req.Origin)))
		return
	}

	activity := types.ScheduledActivity{
		ID:            req.ID,
		Name:          req.Name,
		Origin:        req.Origin,
		POIID:         req.POIID,
		Region:        req.Region,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Day:           req.Day,
		StartTime:     req.StartTime,
		DurationHours: req.DurationHours,
		ShopIDs:       req.ShopIDs,
		Notes:         req.Notes,
	}
	// POI-backed activities reuse the POI id so re-selecting the same spot
	// toggles it off; custom spots get a fresh id.
	if activity.ID == "" {
		if activity.Origin == types.OriginPOI && activity.POIID != "" {
			activity.ID = activity.POIID
		} else {
			activity.ID = uuid.New().String()
		}
	}

	result, err := h.schedules.Insert(c.Request.Context(), c.Param("id"), activity)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activityId": activity.ID,
		"result":     result,
	})
}

// UpdateActivity handles PATCH /v1/trips/:id/activities/:activityId.
func (h *ScheduleHandler) UpdateActivity(c *gin.Context) {
	var update types.ActivityUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	result, err := h.schedules.Update(c.Request.Context(), c.Param("id"), c.Param("activityId"), update)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// RemoveActivity handles DELETE /v1/trips/:id/activities/:activityId.
func (h *ScheduleHandler) RemoveActivity(c *gin.Context) {
	if err := h.schedules.Remove(c.Request.Context(), c.Param("id"), c.Param("activityId")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListActivities handles GET /v1/trips/:id/activities.
func (h *ScheduleHandler) ListActivities(c *gin.Context) {
	activities, conflicts, err := h.schedules.Activities(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"activities": activities,
		"conflicts":  conflicts,
	})
}

// GetItinerary handles GET /v1/trips/:id/itinerary.
func (h *ScheduleHandler) GetItinerary(c *gin.Context) {
	entries, err := h.schedules.Itinerary(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"itinerary": entries})
}
