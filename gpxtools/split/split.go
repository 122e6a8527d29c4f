package split

import (
	"os"
	"path/filepath"
	"strings"

	"gpxsplit-tools/gpxtools/gpxio"
	"gpxsplit-tools/gpxtools/naming"
	"gpxsplit-tools/gpxtools/segmenter"
	"gpxsplit-tools/gpxtools/track"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	trackSuffix    = "_track"
	waypointSuffix = "_waypoint"
)

// Splitter reads GPX files and writes every segment and waypoint they hold
// to its own file.
type Splitter struct {
	Codec     gpxio.Codec
	Namer     *naming.Namer
	Threshold float64

	Log logrus.FieldLogger
}

// Summary counts what a run produced
type Summary struct {
	Files     int
	Tracks    int
	Waypoints int
	Discarded int
}

func (s *Summary) add(o Summary) {
	s.Files += o.Files
	s.Tracks += o.Tracks
	s.Waypoints += o.Waypoints
	s.Discarded += o.Discarded
}

// Run splits the given files in order. The first failure aborts the run.
func (s *Splitter) Run(paths []string) (Summary, error) {
	var total Summary
	for _, p := range paths {
		sum, err := s.SplitFile(p)
		total.add(sum)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// SplitFile splits a single GPX file
func (s *Splitter) SplitFile(path string) (Summary, error) {
	sum := Summary{Files: 1}
	log := s.logger().WithField("input", path)

	doc, err := s.decode(path)
	if err != nil {
		return sum, err
	}

	stem := Stem(path)
	seg := segmenter.New(s.Threshold)

	for _, t := range doc.Tracks {
		for _, ts := range t.Segments {
			if err := s.writeSegment(seg.BeginSegment(t.Name), stem, &sum); err != nil {
				return sum, err
			}
			log.WithFields(logrus.Fields{"track": seg.Label(), "points": ts.Len()}).Debug("reading segment")
			for _, p := range ts.Points {
				c, split := seg.Add(p)
				if !split {
					continue
				}
				if err := s.writeSegment(c, stem, &sum); err != nil {
					return sum, err
				}
			}
		}
	}
	if err := s.writeSegment(seg.Flush(), stem, &sum); err != nil {
		return sum, err
	}

	for _, wp := range doc.Waypoints {
		if err := s.writeWaypoint(wp, stem); err != nil {
			return sum, err
		}
		sum.Waypoints++
	}

	log.WithFields(logrus.Fields{
		"tracks":    sum.Tracks,
		"waypoints": sum.Waypoints,
		"discarded": sum.Discarded,
	}).Info("split done")

	return sum, nil
}

// Stem returns the file name of path without its extension
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (s *Splitter) decode(path string) (*track.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open '%s'", path)
	}
	defer f.Close()

	doc, err := s.Codec.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read '%s'", path)
	}
	return doc, nil
}

// writeSegment writes a closed segment unless it has a single point or none
func (s *Splitter) writeSegment(c segmenter.Closed, stem string, sum *Summary) error {
	if !c.Writable() {
		if c.Segment.Len() > 0 {
			sum.Discarded++
		}
		return nil
	}

	data, err := s.Codec.EncodeTrack(c.Label, c.Segment)
	if err != nil {
		return errors.Wrap(err, "could not encode track")
	}

	tb := c.Segment.TimeBounds()
	path, err := s.Namer.Unique(stem+trackSuffix, tb.StartTime, c.Label)
	if err != nil {
		return err
	}
	if err := writeFile(path, data); err != nil {
		return err
	}
	sum.Tracks++

	stats := c.Segment.Stats()
	s.logger().WithFields(logrus.Fields{
		"points":   c.Segment.Len(),
		"distance": int(stats.Distance),
		"duration": stats.Duration,
		"bounds":   c.Segment.Bounds(),
	}).Debugf("wrote %s", path)

	return nil
}

func (s *Splitter) writeWaypoint(wp track.Waypoint, stem string) error {
	data, err := s.Codec.EncodeWaypoint(wp)
	if err != nil {
		return errors.Wrap(err, "could not encode waypoint")
	}

	path, err := s.Namer.Unique(stem+waypointSuffix, wp.Time, wp.Name)
	if err != nil {
		return err
	}
	if err := writeFile(path, data); err != nil {
		return err
	}

	s.logger().Debugf("wrote %s", path)
	return nil
}

func writeFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create '%s'", path)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.Wrapf(err, "could not write '%s'", path)
	}
	return errors.Wrapf(f.Close(), "could not close '%s'", path)
}

func (s *Splitter) logger() logrus.FieldLogger {
	if s.Log == nil {
		return logrus.StandardLogger()
	}
	return s.Log
}
