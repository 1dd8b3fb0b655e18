package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/jalanjalan/jalanjalan-backend/errors"
	"github.com/jalanjalan/jalanjalan-backend/services"
	"github.com/jalanjalan/jalanjalan-backend/types"
)

// TripHandler exposes trip lifecycle operations.
type TripHandler struct {
	schedules *services.ScheduleService
}

// NewTripHandler creates a TripHandler.
func NewTripHandler(schedules *services.ScheduleService) *TripHandler {
	return &TripHandler{schedules: schedules}
}

// CreateTripRequest is the request body for creating a trip.
type CreateTripRequest struct {
	Name          string              `json:"name" binding:"required"`
	Region        string              `json:"region" binding:"required"`
	DurationDays  int                 `json:"durationDays" binding:"required"`
	TransportMode types.TransportMode `json:"transportMode" binding:"required"`
	Participants  []string            `json:"participants,omitempty"`
}

// CreateTrip handles POST /v1/trips.
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	trip := &types.Trip{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Region:        req.Region,
		DurationDays:  req.DurationDays,
		TransportMode: req.TransportMode,
		Participants:  req.Participants,
	}
	if err := h.schedules.CreateTrip(c.Request.Context(), trip); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// GetTrip handles GET /v1/trips/:id.
func (h *TripHandler) GetTrip(c *gin.Context) {
	trip, err := h.schedules.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// FinalizeTripRequest is the request body for finalizing a trip.
type FinalizeTripRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// FinalizeTrip handles POST /v1/trips/:id/finalize. Unresolved slot
// conflicts make this a 409; the client sends the user back to fix them.
func (h *TripHandler) FinalizeTrip(c *gin.Context) {
	var req FinalizeTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	entries, err := h.schedules.Finalize(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"itinerary": entries})
}

// ListSavedTrips handles GET /v1/users/:userId/saved-trips.
func (h *TripHandler) ListSavedTrips(c *gin.Context) {
	trips, err := h.schedules.SavedTrips(c.Request.Context(), c.Param("userId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}
