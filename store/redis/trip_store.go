// Package redis implements the opaque trip blob store and the POI pool
// cache on Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	internalstore "github.com/jalanjalan/jalanjalan-backend/internal/store"
	"github.com/jalanjalan/jalanjalan-backend/logger"
	"github.com/jalanjalan/jalanjalan-backend/types"
)

const (
	tripKeyPrefix       = "trip:"
	savedTripsKeyPrefix = "saved_trips:"
)

var _ internalstore.TripStore = (*redisTripStore)(nil)

type redisTripStore struct {
	client redis.UniversalClient
}

// NewTripStore creates a Redis-backed trip store. Trips and saved-trip
// arrays are stored as JSON blobs; nothing above this layer depends on the
// encoding.
func NewTripStore(client redis.UniversalClient) internalstore.TripStore {
	return &redisTripStore{client: client}
}

func (s *redisTripStore) GetTrip(ctx context.Context, id string) (*types.Trip, error) {
	raw, err := s.client.Get(ctx, tripKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, internalstore.ErrNotFound
		}
		return nil, err
	}
	var trip types.Trip
	if err := json.Unmarshal(raw, &trip); err != nil {
		return nil, fmt.Errorf("corrupt trip blob for %s: %w", id, err)
	}
	return &trip, nil
}

func (s *redisTripStore) SaveTrip(ctx context.Context, trip *types.Trip) error {
	trip.UpdatedAt = time.Now().UTC()
	raw, err := json.Marshal(trip)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, tripKeyPrefix+trip.ID, string(raw), 0).Err()
}

// AppendSavedTrip reads the user's saved-trips array, appends, and writes it
// back. Single-writer per user is assumed, matching the one-device mobile
// flow this store serves.
func (s *redisTripStore) AppendSavedTrip(ctx context.Context, userID string, saved types.SavedTrip) error {
	trips, err := s.ListSavedTrips(ctx, userID)
	if err != nil {
		return err
	}
	trips = append(trips, saved)
	raw, err := json.Marshal(trips)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, savedTripsKeyPrefix+userID, string(raw), 0).Err()
}

func (s *redisTripStore) ListSavedTrips(ctx context.Context, userID string) ([]types.SavedTrip, error) {
	raw, err := s.client.Get(ctx, savedTripsKeyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []types.SavedTrip{}, nil
		}
		return nil, err
	}
	var trips []types.SavedTrip
	if err := json.Unmarshal(raw, &trips); err != nil {
		logger.GetLogger().Warnw("Discarding corrupt saved-trips blob", "userId", userID, "error", err)
		return []types.SavedTrip{}, nil
	}
	return trips, nil
}

func poolKey(region string) string {
	return "poi_pool:" + strings.ToLower(region)
}
