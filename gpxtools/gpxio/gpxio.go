package gpxio

import (
	"fmt"
	"io"

	"gpxsplit-tools/gpxtools/track"

	"github.com/tkrajina/gpxgo/gpx"
)

// GpxVersion GPX version
const GpxVersion = "1.1"

// Creator is written in the creator attribute of every produced document
const Creator = "gpxsplit"

const gpxXMLNs = "http://www.topografix.com/GPX/1/1"
const gpsXMLNsXsi = "http://www.w3.org/2001/XMLSchema-instance"

// Codec reads GPX documents into the track model and serializes output units
type Codec interface {
	Decode(r io.Reader) (*track.Document, error)
	EncodeTrack(name string, seg track.Segment) ([]byte, error)
	EncodeWaypoint(wp track.Waypoint) ([]byte, error)
}

// ParseError is returned when an input document is not valid GPX
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed gpx document: %s", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// GPX is a Codec backed by gpxgo
type GPX struct {
	Indent bool
}

// New creates a codec producing indented GPX 1.1 documents
func New() *GPX {
	return &GPX{Indent: true}
}

// Decode parses a GPX document
func (c *GPX) Decode(r io.Reader) (*track.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	g, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	doc := &track.Document{
		Tracks:    make([]track.Track, len(g.Tracks)),
		Waypoints: make([]track.Waypoint, len(g.Waypoints)),
	}
	for i, t := range g.Tracks {
		segments := make([]track.Segment, len(t.Segments))
		for j, s := range t.Segments {
			pts := make([]track.Point, len(s.Points))
			for k, p := range s.Points {
				pts[k] = fromGpxPoint(p)
			}
			segments[j] = track.Segment{Points: pts}
		}
		doc.Tracks[i] = track.Track{Name: t.Name, Segments: segments}
	}
	for i, w := range g.Waypoints {
		doc.Waypoints[i] = track.Waypoint{
			Point:       fromGpxPoint(w),
			Name:        w.Name,
			Comment:     w.Comment,
			Description: w.Description,
			Symbol:      w.Symbol,
		}
	}

	return doc, nil
}

// EncodeTrack builds a document holding one track with one segment
func (c *GPX) EncodeTrack(name string, seg track.Segment) ([]byte, error) {
	points := make([]gpx.GPXPoint, len(seg.Points))
	for i, p := range seg.Points {
		points[i] = toGpxPoint(p)
	}

	t := gpx.GPXTrack{
		Name:     name,
		Segments: []gpx.GPXTrackSegment{{Points: points}},
	}

	g := newDocument()
	g.Tracks = []gpx.GPXTrack{t}

	return g.ToXml(gpx.ToXmlParams{Version: GpxVersion, Indent: c.Indent})
}

// EncodeWaypoint builds a document holding a single waypoint
func (c *GPX) EncodeWaypoint(wp track.Waypoint) ([]byte, error) {
	p := toGpxPoint(wp.Point)
	p.Name = wp.Name
	p.Comment = wp.Comment
	p.Description = wp.Description
	p.Symbol = wp.Symbol

	g := newDocument()
	g.Waypoints = []gpx.GPXPoint{p}

	return g.ToXml(gpx.ToXmlParams{Version: GpxVersion, Indent: c.Indent})
}

func newDocument() *gpx.GPX {
	return &gpx.GPX{
		XMLNs:        gpxXMLNs,
		XmlNsXsi:     gpsXMLNsXsi,
		XmlSchemaLoc: gpxXMLNs,

		Version: GpxVersion,
		Creator: Creator,
	}
}

func fromGpxPoint(p gpx.GPXPoint) track.Point {
	pt := track.Point{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Time:      p.Timestamp,
	}
	if p.Elevation.NotNull() {
		pt.Elevation = track.Float(p.Elevation.Value())
	}
	return pt
}

func toGpxPoint(p track.Point) gpx.GPXPoint {
	gp := gpx.GPXPoint{
		Point: gpx.Point{
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
		},
		Timestamp: p.Time,
	}
	if p.Elevation != nil {
		gp.Elevation = *gpx.NewNullableFloat64(*p.Elevation)
	}
	return gp
}
