package services

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/jalanjalan/jalanjalan-backend/errors"
	"github.com/jalanjalan/jalanjalan-backend/internal/planner"
	"github.com/jalanjalan/jalanjalan-backend/internal/schedule"
	"github.com/jalanjalan/jalanjalan-backend/internal/store"
	"github.com/jalanjalan/jalanjalan-backend/logger"
	"github.com/jalanjalan/jalanjalan-backend/types"
)

// ScheduleService owns the per-trip schedule models and the itinerary view
// derived from them. Edits to one trip serialize through a single mutex, so
// two clients editing the same trip cannot interleave inside the model.
type ScheduleService struct {
	tripStore store.TripStore
	assembler *planner.Assembler

	mu     sync.Mutex
	models map[string]*schedule.Model
}

// NewScheduleService creates a ScheduleService.
func NewScheduleService(tripStore store.TripStore, assembler *planner.Assembler) *ScheduleService {
	return &ScheduleService{
		tripStore: tripStore,
		assembler: assembler,
		models:    make(map[string]*schedule.Model),
	}
}

// model returns the trip's schedule model, creating it sized to the trip's
// duration on first touch. Callers must hold s.mu.
func (s *ScheduleService) model(ctx context.Context, tripID string) (*schedule.Model, *types.Trip, error) {
	trip, err := s.tripStore.GetTrip(ctx, tripID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, nil, apperrors.NotFound("Trip", tripID)
		}
		return nil, nil, apperrors.NewDatabaseError(err)
	}
	m, ok := s.models[tripID]
	if !ok {
		m = schedule.New(trip.DurationDays)
		s.models[tripID] = m
	}
	return m, trip, nil
}

// Insert adds an activity to the trip's schedule. The returned SlotResult
// carries any slot conflict; a conflict is a warning for the UI, not an
// error, and the activity is scheduled regardless.
func (s *ScheduleService) Insert(ctx context.Context, tripID string, activity types.ScheduledActivity) (types.SlotResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, _, err := s.model(ctx, tripID)
	if err != nil {
		return types.SlotResult{}, err
	}

	result := m.Insert(activity)
	if result.ConflictWith != "" {
		logger.GetLogger().Infow("Slot conflict on insert",
			"tripId", tripID, "activityId", activity.ID, "conflictWith", result.ConflictWith)
	}
	return result, nil
}

// Update applies a partial edit to a scheduled activity.
func (s *ScheduleService) Update(ctx context.Context, tripID, activityID string, update types.ActivityUpdate) (types.SlotResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, _, err := s.model(ctx, tripID)
	if err != nil {
		return types.SlotResult{}, err
	}

	result, err := m.Update(activityID, update)
	if err != nil {
		return types.SlotResult{}, apperrors.NotFound("Scheduled activity", activityID)
	}
	return result, nil
}

// Remove deletes a scheduled activity.
func (s *ScheduleService) Remove(ctx context.Context, tripID, activityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, _, err := s.model(ctx, tripID)
	if err != nil {
		return err
	}
	if !m.Remove(activityID) {
		return apperrors.NotFound("Scheduled activity", activityID)
	}
	return nil
}

// Activities returns the trip's schedule in (day, time) order together with
// the outstanding slot conflicts.
func (s *ScheduleService) Activities(ctx context.Context, tripID string) ([]types.ScheduledActivity, map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, _, err := s.model(ctx, tripID)
	if err != nil {
		return nil, nil, err
	}
	return m.Activities(), m.Conflicts(), nil
}

// Itinerary assembles the rendered sequence for the trip: check-in entry,
// activities in order, transport legs between same-day neighbors.
func (s *ScheduleService) Itinerary(ctx context.Context, tripID string) ([]types.ItineraryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, trip, err := s.model(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return s.assembler.Assemble(m.Activities(), trip.TransportMode), nil
}

// Finalize flattens the itinerary into the user's saved trips and marks the
// trip finalized. Outstanding slot conflicts block finalization; that is
// the "cannot progress past selection" rule from the planning flow.
func (s *ScheduleService) Finalize(ctx context.Context, tripID, userID string) ([]types.ItineraryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, trip, err := s.model(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if m.HasConflicts() {
		return nil, apperrors.NewConflictError(
			"schedule has unresolved slot conflicts",
			"move the conflicting activities to different times before finalizing",
		)
	}
	if !trip.Status.IsValidTransition(types.TripStatusFinalized) {
		return nil, apperrors.ValidationFailed(
			"trip cannot be finalized",
			"status is "+trip.Status.String(),
		)
	}

	entries := s.assembler.Assemble(m.Activities(), trip.TransportMode)
	saved := types.SavedTrip{
		Trip:      *trip,
		Itinerary: entries,
		SavedAt:   time.Now().UTC(),
	}
	if err := s.tripStore.AppendSavedTrip(ctx, userID, saved); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	trip.Status = types.TripStatusFinalized
	if err := s.tripStore.SaveTrip(ctx, trip); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	// The working schedule is discarded once the trip is flattened.
	delete(s.models, tripID)
	return entries, nil
}

// CreateTrip registers a new planning context.
func (s *ScheduleService) CreateTrip(ctx context.Context, trip *types.Trip) error {
	if trip.DurationDays < 1 {
		return apperrors.ValidationFailed("invalid trip", "duration must be at least one day")
	}
	if !trip.TransportMode.IsValid() {
		return apperrors.ValidationFailed("invalid trip", "transport mode must be OWN or PUBLIC")
	}
	trip.Status = types.TripStatusPlanning
	trip.CreatedAt = time.Now().UTC()
	if err := s.tripStore.SaveTrip(ctx, trip); err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// GetTrip fetches a trip.
func (s *ScheduleService) GetTrip(ctx context.Context, tripID string) (*types.Trip, error) {
	trip, err := s.tripStore.GetTrip(ctx, tripID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, apperrors.NotFound("Trip", tripID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return trip, nil
}

// SavedTrips lists the user's finalized trips.
func (s *ScheduleService) SavedTrips(ctx context.Context, userID string) ([]types.SavedTrip, error) {
	trips, err := s.tripStore.ListSavedTrips(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return trips, nil
}
