package track

import (
	"time"
)

// Point is a recorded position. A nil Elevation or a zero Time means the
// value was absent from the source.
type Point struct {
	Latitude, Longitude float64
	Elevation           *float64
	Time                time.Time
}

// Lat returns the latitude in degrees
func (p Point) Lat() float64 {
	return p.Latitude
}

// Lng returns the longitude in degrees
func (p Point) Lng() float64 {
	return p.Longitude
}

// HasTime reports whether the point carries a timestamp
func (p Point) HasTime() bool {
	return !p.Time.IsZero()
}

// Waypoint is a single named point, independent of any track
type Waypoint struct {
	Point

	Name        string
	Comment     string
	Description string
	Symbol      string
}

// Document is the content of one GPX file
type Document struct {
	Tracks    []Track
	Waypoints []Waypoint
}

// Float returns a pointer to v, for optional values such as elevation.
func Float(v float64) *float64 {
	return &v
}
