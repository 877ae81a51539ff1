// Package domain contains the core data types for the travel recommendation API.
// It is imported by every other internal package (recommend, repo, service, handler)
// and depends on nothing inside this module.
package domain

import (
	"slices"

	"github.com/google/uuid"
)

// Destination is one catalog entry. Budget and duration are stored as ranges;
// the recommendation engine collapses them into a single offer per request.
//
// Destinations handed to the engine are treated as read-only. Projection works
// on copies produced by Project.
type Destination struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Country     string      `json:"country"`
	Description string      `json:"description"`
	MinBudget   int         `json:"minBudget"`
	MaxBudget   int         `json:"maxBudget"`
	MinDuration int         `json:"minDuration"`
	MaxDuration int         `json:"maxDuration"`
	Interests   InterestSet `json:"interests"`
	Rating      float64     `json:"rating"`
	Reviews     int         `json:"reviews"`
	Image       string      `json:"image"`
	Highlights  []string    `json:"highlights"`
	BestTime    string      `json:"bestTime"`
}

// EffectiveMinDuration returns MinDuration, treating zero or negative values as 1
// so that per-day rates never divide by zero.
func (d Destination) EffectiveMinDuration() int {
	if d.MinDuration < 1 {
		return 1
	}
	return d.MinDuration
}

// Project returns a copy of d describing a single concrete offer: both budget
// fields set to price and both duration fields set to days. d is not modified.
func (d Destination) Project(price, days int) Destination {
	p := d
	p.Highlights = slices.Clone(d.Highlights)
	p.MinBudget, p.MaxBudget = price, price
	p.MinDuration, p.MaxDuration = days, days
	return p
}

// DestinationFilter narrows catalog browsing. Empty fields match everything.
// Country matches case-insensitively; Interest must be a member of the
// destination's interest set.
type DestinationFilter struct {
	Country  string
	Interest string
}
