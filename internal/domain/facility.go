package domain

import "time"

// Facility represents a bookable sports facility. Facilities are immutable
// reference data seeded by migration; the service never mutates them.
type Facility struct {
	ID          int64
	Slug        string
	Name        string
	Description string
	ImageURL    string
	Capacity    int
	HourlyRate  float64
	Features    []string
	CreatedAt   time.Time
}
