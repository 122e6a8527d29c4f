package segmenter_test

import (
	"testing"

	"gpxsplit-tools/gpxtools/segmenter"
	"gpxsplit-tools/gpxtools/track"

	"github.com/stretchr/testify/require"
)

// about 111m per 0.001 degree of latitude
func pt(lat float64) track.Point {
	return track.Point{Latitude: lat, Longitude: -121.9}
}

// feed runs every input segment through a Segmenter the way a file is read
// and returns all closed segments, writable or not.
func feed(s *segmenter.Segmenter, tracks []track.Track) []segmenter.Closed {
	var out []segmenter.Closed
	for _, t := range tracks {
		for _, seg := range t.Segments {
			out = append(out, s.BeginSegment(t.Name))
			for _, p := range seg.Points {
				if c, ok := s.Add(p); ok {
					out = append(out, c)
				}
			}
		}
	}
	return append(out, s.Flush())
}

func writable(closed []segmenter.Closed) []segmenter.Closed {
	var out []segmenter.Closed
	for _, c := range closed {
		if c.Writable() {
			out = append(out, c)
		}
	}
	return out
}

func TestNoSplit(t *testing.T) {
	require := require.New(t)

	points := []track.Point{pt(47.000), pt(47.001), pt(47.002), pt(47.003)}
	tracks := []track.Track{{Name: "Hike", Segments: []track.Segment{{Points: points}}}}

	out := writable(feed(segmenter.New(segmenter.DefaultThreshold), tracks))

	require.Len(out, 1)
	require.Equal(points, out[0].Segment.Points)
	require.Equal("Hike", out[0].Label)
}

func TestSplit(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		points []track.Point
		want   [][]track.Point
	}{
		"middle": {
			points: []track.Point{pt(47.000), pt(47.001), pt(47.010), pt(47.011)},
			want:   [][]track.Point{{pt(47.000), pt(47.001)}, {pt(47.010), pt(47.011)}},
		},
		"last_point_alone": {
			points: []track.Point{pt(47.000), pt(47.001), pt(47.010)},
			want:   [][]track.Point{{pt(47.000), pt(47.001)}, {pt(47.010)}},
		},
		"every_point": {
			points: []track.Point{pt(47.00), pt(47.01), pt(47.02)},
			want:   [][]track.Point{{pt(47.00)}, {pt(47.01)}, {pt(47.02)}},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			s := segmenter.New(segmenter.DefaultThreshold)

			var got [][]track.Point
			for _, c := range feed(s, []track.Track{{Segments: []track.Segment{{Points: tc.points}}}}) {
				if c.Segment.Len() > 0 {
					got = append(got, c.Segment.Points)
				}
			}
			require.Equal(tc.want, got)
		})
	}
}

func TestThreshold(t *testing.T) {
	require := require.New(t)

	// 0.001 degree of latitude is about 111.3m
	points := []track.Point{pt(47.000), pt(47.001)}

	tests := map[string]struct {
		threshold float64
		want      int
	}{
		"above":   {threshold: 112, want: 1},
		"below":   {threshold: 111, want: 0},
		"zero":    {threshold: 0, want: 0},
		"default": {threshold: segmenter.DefaultThreshold, want: 1},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out := writable(feed(segmenter.New(tc.threshold), []track.Track{{Segments: []track.Segment{{Points: points}}}}))
			require.Len(out, tc.want)
		})
	}
}

func TestLabelOrdering(t *testing.T) {
	require := require.New(t)

	s := segmenter.New(segmenter.DefaultThreshold)

	c := s.BeginSegment("A")
	require.Equal("", c.Label)
	require.Equal(0, c.Segment.Len())
	require.Equal("A", s.Label())

	_, split := s.Add(pt(47.000))
	require.False(split)
	_, split = s.Add(pt(47.001))
	require.False(split)

	c = s.BeginSegment("B")
	require.Equal("A", c.Label)
	require.Equal(2, c.Segment.Len())
	require.Equal("B", s.Label())

	s.Add(pt(47.000))
	c, split = s.Add(pt(47.010))
	require.True(split)
	require.Equal("B", c.Label)
	require.Equal(1, c.Segment.Len())
	require.False(c.Writable())

	c = s.Flush()
	require.Equal("B", c.Label)
	require.Equal([]track.Point{pt(47.010)}, c.Segment.Points)
	require.Equal(0, s.Flush().Segment.Len())
}

func TestSegmentsDoNotBridgeInputSegments(t *testing.T) {
	require := require.New(t)

	tracks := []track.Track{{
		Name: "Hike",
		Segments: []track.Segment{
			{Points: []track.Point{pt(47.000), pt(47.001)}},
			{Points: []track.Point{pt(47.002), pt(47.003)}},
		},
	}}

	out := writable(feed(segmenter.New(segmenter.DefaultThreshold), tracks))

	require.Len(out, 2)
	require.Equal([]track.Point{pt(47.000), pt(47.001)}, out[0].Segment.Points)
	require.Equal([]track.Point{pt(47.002), pt(47.003)}, out[1].Segment.Points)
}
