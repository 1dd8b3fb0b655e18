package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	internalstore "github.com/jalanjalan/jalanjalan-backend/internal/store"
	"github.com/jalanjalan/jalanjalan-backend/logger"
	"github.com/jalanjalan/jalanjalan-backend/types"
)

var _ internalstore.POIStore = (*pgPOIStore)(nil)

type pgPOIStore struct {
	db DB
}

// NewPgPOIStore creates a read-only PostgreSQL point-of-interest store.
func NewPgPOIStore(db DB) internalstore.POIStore {
	return &pgPOIStore{db: db}
}

// poiColumns normalizes the catalogue's historical column drift into one
// canonical shape: image_url wins over the legacy image column.
const poiColumns = `
    id, name, category, tags, region,
    latitude, longitude, duration_minutes, price, rating,
    COALESCE(description, ''), COALESCE(image_url, image, '')`

// ListPOIs returns catalogue entries, optionally narrowed by region
// (case-insensitive) and tag overlap. Results are ordered by id so repeated
// queries feed the planner an identical pool.
func (s *pgPOIStore) ListPOIs(ctx context.Context, query internalstore.POIQuery) ([]types.PointOfInterest, error) {
	log := logger.GetLogger()

	sql := `SELECT` + poiColumns + ` FROM points_of_interest`
	var (
		args    []any
		clauses []string
	)
	if query.Region != "" {
		args = append(args, query.Region)
		clauses = append(clauses, fmt.Sprintf("LOWER(region) = LOWER($%d)", len(args)))
	}
	if len(query.Tags) > 0 {
		args = append(args, query.Tags)
		clauses = append(clauses, fmt.Sprintf("tags && $%d", len(args)))
	}
	for i, clause := range clauses {
		if i == 0 {
			sql += " WHERE " + clause
		} else {
			sql += " AND " + clause
		}
	}
	sql += " ORDER BY id"
	if query.Limit > 0 {
		args = append(args, query.Limit)
		sql += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		log.Errorw("Failed to query points of interest", "region", query.Region, "error", err)
		return nil, err
	}
	defer rows.Close()

	var pois []types.PointOfInterest
	for rows.Next() {
		var poi types.PointOfInterest
		if err := rows.Scan(
			&poi.ID, &poi.Name, &poi.Category, &poi.Tags, &poi.Region,
			&poi.Latitude, &poi.Longitude, &poi.DurationMinutes, &poi.Price, &poi.Rating,
			&poi.Description, &poi.ImageURL,
		); err != nil {
			return nil, err
		}
		pois = append(pois, poi)
	}
	return pois, rows.Err()
}

// GetPOI fetches a single catalogue entry by id.
func (s *pgPOIStore) GetPOI(ctx context.Context, id string) (*types.PointOfInterest, error) {
	var poi types.PointOfInterest
	err := s.db.QueryRow(ctx,
		`SELECT`+poiColumns+` FROM points_of_interest WHERE id = $1`, id,
	).Scan(
		&poi.ID, &poi.Name, &poi.Category, &poi.Tags, &poi.Region,
		&poi.Latitude, &poi.Longitude, &poi.DurationMinutes, &poi.Price, &poi.Rating,
		&poi.Description, &poi.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, internalstore.ErrNotFound
		}
		return nil, err
	}
	return &poi, nil
}
