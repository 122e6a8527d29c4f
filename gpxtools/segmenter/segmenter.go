package segmenter

import (
	"gpxsplit-tools/gpxtools/track"
)

// DefaultThreshold is the split distance in meters used when none is configured
const DefaultThreshold = 300

// Closed is a segment handed off by the Segmenter, along with the label in
// effect when it was closed.
type Closed struct {
	Segment track.Segment
	Label   string
}

// Writable returns true if the segment has enough points to be written out
func (c Closed) Writable() bool {
	return c.Segment.Len() > 1
}

// Segmenter regroups points into segments, starting a new one whenever two
// consecutive points are farther apart than the threshold.
type Segmenter struct {
	threshold float64

	current  track.Segment
	previous *track.Point
	label    string
}

// New creates a Segmenter splitting at the given distance in meters
func New(threshold float64) *Segmenter {
	return &Segmenter{threshold: threshold}
}

// Label returns the label currently carried by the Segmenter
func (s *Segmenter) Label() string {
	return s.label
}

// BeginSegment must be called before the points of each input segment. It
// closes the open segment under the current label and only then switches
// the label to trackName.
func (s *Segmenter) BeginSegment(trackName string) Closed {
	c := s.close()
	s.label = trackName
	s.previous = nil
	return c
}

// Add feeds the next point. When the point is too far from the previous
// one, the open segment is closed and returned, and the point starts the
// next segment.
func (s *Segmenter) Add(p track.Point) (Closed, bool) {
	var (
		c     Closed
		split bool
	)
	if s.previous != nil && track.Distance2D(*s.previous, p) > s.threshold {
		c = s.close()
		split = true
	}

	s.previous = &p
	s.current.Append(p)
	return c, split
}

// Flush closes the open segment at the end of an input file
func (s *Segmenter) Flush() Closed {
	return s.close()
}

func (s *Segmenter) close() Closed {
	c := Closed{Segment: s.current, Label: s.label}
	s.current = track.Segment{}
	return c
}
