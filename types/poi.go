package types

import "strings"

// Coordinate is a geographic lat/lng pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PointOfInterest represents an attraction, food spot, shop or mall that can
// be scheduled into a day plan. Records are read-only once fetched from the
// catalogue; the store layer normalizes them into this single shape.
type PointOfInterest struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	Region          string   `json:"region"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           float64  `json:"price"`
	Rating          float64  `json:"rating"`
	Description     string   `json:"description,omitempty"`
	ImageURL        string   `json:"imageUrl,omitempty"`
}

// Coordinate returns the POI's location as a Coordinate.
func (p PointOfInterest) Coordinate() Coordinate {
	return Coordinate{Lat: p.Latitude, Lng: p.Longitude}
}

// HasTag reports whether the POI carries the given tag (case-insensitive).
func (p PointOfInterest) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// PlannedStop is a POI that the day-plan builder has placed into a sequence,
// annotated with the period of day it was slotted into.
type PlannedStop struct {
	PointOfInterest
	Period string `json:"period"`
}
