package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jalanjalan/jalanjalan-backend/internal/store"
	"github.com/jalanjalan/jalanjalan-backend/types"
)

type MockTripStore struct {
	mock.Mock
}

func (m *MockTripStore) GetTrip(ctx context.Context, id string) (*types.Trip, error) {
	args := m.Called(ctx, id)
	if trip := args.Get(0); trip != nil {
		return trip.(*types.Trip), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTripStore) SaveTrip(ctx context.Context, trip *types.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripStore) AppendSavedTrip(ctx context.Context, userID string, saved types.SavedTrip) error {
	args := m.Called(ctx, userID, saved)
	return args.Error(0)
}

func (m *MockTripStore) ListSavedTrips(ctx context.Context, userID string) ([]types.SavedTrip, error) {
	args := m.Called(ctx, userID)
	if trips := args.Get(0); trips != nil {
		return trips.([]types.SavedTrip), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBillStore struct {
	mock.Mock
}

func (m *MockBillStore) CreateBill(ctx context.Context, bill *types.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillStore) ListBills(ctx context.Context, tripID string) ([]types.Bill, error) {
	args := m.Called(ctx, tripID)
	if bills := args.Get(0); bills != nil {
		return bills.([]types.Bill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBillStore) DeleteBill(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPOIStore struct {
	mock.Mock
}

func (m *MockPOIStore) ListPOIs(ctx context.Context, query store.POIQuery) ([]types.PointOfInterest, error) {
	args := m.Called(ctx, query)
	if pois := args.Get(0); pois != nil {
		return pois.([]types.PointOfInterest), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPOIStore) GetPOI(ctx context.Context, id string) (*types.PointOfInterest, error) {
	args := m.Called(ctx, id)
	if poi := args.Get(0); poi != nil {
		return poi.(*types.PointOfInterest), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPOICache struct {
	mock.Mock
}

func (m *MockPOICache) GetPool(ctx context.Context, region string) ([]types.PointOfInterest, bool) {
	args := m.Called(ctx, region)
	if pool := args.Get(0); pool != nil {
		return pool.([]types.PointOfInterest), args.Bool(1)
	}
	return nil, args.Bool(1)
}

func (m *MockPOICache) SetPool(ctx context.Context, region string, pool []types.PointOfInterest) {
	m.Called(ctx, region, pool)
}
