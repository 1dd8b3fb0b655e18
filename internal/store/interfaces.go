// Package store defines the data-access interfaces the services depend on.
// Implementations live in store/postgres and store/redis.
package store

import (
	"context"

	"github.com/jalanjalan/jalanjalan-backend/types"
)

// POIQuery narrows a catalogue lookup. Zero values mean "no filter".
type POIQuery struct {
	Region string
	Tags   []string
	Limit  int
}

// POIStore reads the point-of-interest catalogue. The catalogue is owned
// externally; this interface is read-only.
type POIStore interface {
	ListPOIs(ctx context.Context, query POIQuery) ([]types.PointOfInterest, error)
	GetPOI(ctx context.Context, id string) (*types.PointOfInterest, error)
}

// BillStore persists the group-expense ledger's bills. Bills are immutable
// once created; there is no update.
type BillStore interface {
	CreateBill(ctx context.Context, bill *types.Bill) error
	ListBills(ctx context.Context, tripID string) ([]types.Bill, error)
	DeleteBill(ctx context.Context, id string) error
}

// TripStore keeps trips and their finalized itineraries as opaque JSON
// blobs; no planning logic depends on its internals.
type TripStore interface {
	GetTrip(ctx context.Context, id string) (*types.Trip, error)
	SaveTrip(ctx context.Context, trip *types.Trip) error
	AppendSavedTrip(ctx context.Context, userID string, saved types.SavedTrip) error
	ListSavedTrips(ctx context.Context, userID string) ([]types.SavedTrip, error)
}

// POICache is a read-through cache of per-region candidate pools sitting in
// front of the catalogue.
type POICache interface {
	GetPool(ctx context.Context, region string) ([]types.PointOfInterest, bool)
	SetPool(ctx context.Context, region string, pool []types.PointOfInterest)
}
