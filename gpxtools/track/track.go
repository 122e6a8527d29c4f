package track

import (
	"time"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Track is a named list of segments as read from a GPX file. An empty name
// means the track had none.
type Track struct {
	Name     string
	Segments []Segment
}

// Segment is an ordered run of points. Order is the traversal path.
type Segment struct {
	Points []Point
}

// LatLng latlng
type LatLng interface {
	Lat() float64
	Lng() float64
}

// TimeBounds holds the first and last timestamps of a segment
type TimeBounds struct {
	StartTime time.Time
	EndTime   time.Time
}

// Stats segment statistics
type Stats struct {
	Duration       time.Duration
	StartElevation float64
	EndElevation   float64
	Distance       float64
}

const earthRadius = 6378100

// Distance2D returns the distance in meters between two positions on the
// Earth's surface, ignoring elevation.
func Distance2D(a, b LatLng) float64 {
	return toS2LatLng(a).Distance(toS2LatLng(b)).Radians() * earthRadius
}

// Len returns the number of points in the segment
func (s Segment) Len() int {
	return len(s.Points)
}

// Append adds a point at the end of the segment
func (s *Segment) Append(p Point) {
	s.Points = append(s.Points, p)
}

// TimeBounds returns the first and last timestamps found in the segment.
// Points without a timestamp are skipped; both bounds are zero if no point has one.
func (s Segment) TimeBounds() TimeBounds {
	var tb TimeBounds
	for _, p := range s.Points {
		if !p.HasTime() {
			continue
		}
		if tb.StartTime.IsZero() {
			tb.StartTime = p.Time
		}
		tb.EndTime = p.Time
	}
	return tb
}

// Bounds returns the boundaries of the segment
func (s Segment) Bounds() Bounds {
	if len(s.Points) == 0 {
		return Bounds{}
	}

	first := s.Points[0]
	b := Bounds{
		MinLat: first.Latitude,
		MinLng: first.Longitude,
		MaxLat: first.Latitude,
		MaxLng: first.Longitude,
	}
	for _, p := range s.Points[1:] {
		if p.Latitude < b.MinLat {
			b.MinLat = p.Latitude
		}
		if p.Latitude > b.MaxLat {
			b.MaxLat = p.Latitude
		}
		if p.Longitude < b.MinLng {
			b.MinLng = p.Longitude
		}
		if p.Longitude > b.MaxLng {
			b.MaxLng = p.Longitude
		}
	}
	return b
}

// Stats retrieves statistics from the segment
func (s Segment) Stats() Stats {
	if len(s.Points) == 0 {
		return Stats{}
	}

	tb := s.TimeBounds()
	pts := make([]s2.LatLng, len(s.Points))
	for i, p := range s.Points {
		pts[i] = toS2LatLng(p)
	}
	length := s2.PolylineFromLatLngs(pts).Length()

	return Stats{
		Duration:       tb.EndTime.Sub(tb.StartTime),
		StartElevation: elevation(s.Points[0]),
		EndElevation:   elevation(s.Points[len(s.Points)-1]),
		Distance:       length.Radians() * earthRadius,
	}
}

func elevation(p Point) float64 {
	if p.Elevation == nil {
		return 0
	}
	return *p.Elevation
}

func toS2LatLng(p LatLng) s2.LatLng {
	return s2.LatLng{
		Lat: s1.Angle(p.Lat()) * s1.Degree,
		Lng: s1.Angle(p.Lng()) * s1.Degree,
	}
}
