package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Extension of every produced file
const Extension = ".gpx"

// TimeFormat is the layout of timestamps embedded in file names
const TimeFormat = "2006-01-02 15.04.05"

// DefaultMaxLength is the file name length above which a warning is logged
const DefaultMaxLength = 50

// Namer allocates output file paths that do not exist yet.
type Namer struct {
	Dir         string
	IncludeTime bool
	IncludeName bool
	MaxLength   int // 0 disables the length warning

	Log logrus.FieldLogger
}

// New creates a Namer with default settings writing into dir
func New(dir string, log logrus.FieldLogger) *Namer {
	return &Namer{
		Dir:         dir,
		IncludeTime: true,
		MaxLength:   DefaultMaxLength,
		Log:         log,
	}
}

// Candidate builds the sanitized file name, without suffix nor extension,
// for the given base, time and label. A zero time or an empty label is left out.
func (n *Namer) Candidate(base string, t time.Time, label string) string {
	name := base
	if n.IncludeTime && !t.IsZero() {
		name += "_" + t.Format(TimeFormat)
	}
	if n.IncludeName && label != "" {
		name += "_" + label
	}
	return Sanitize(name)
}

// Path returns the path of the i-th attempt for name. The first attempt has
// no numeric suffix.
func (n *Namer) Path(name string, i int) string {
	file := name + Extension
	if i > 0 {
		file = fmt.Sprintf("%s_%03d%s", name, i, Extension)
	}
	if n.Dir == "" {
		return file
	}
	return filepath.Join(n.Dir, file)
}

// Unique returns the first path derived from base, t and label that does
// not exist on disk. The path is not reserved: a concurrent writer may
// still create it before the caller does.
func (n *Namer) Unique(base string, t time.Time, label string) (string, error) {
	name := n.Candidate(base, t, label)

	var path string
	for i := 0; ; i++ {
		path = n.Path(name, i)
		exists, err := exists(path)
		if err != nil {
			return "", errors.Wrapf(err, "could not check output file '%s'", path)
		}
		if !exists {
			break
		}
	}

	if n.MaxLength != 0 && utf8.RuneCountInString(path) > n.MaxLength {
		n.logger().Warnf("%s greater than %d characters.", path, n.MaxLength)
	}

	return path, nil
}

func (n *Namer) logger() logrus.FieldLogger {
	if n.Log == nil {
		return logrus.StandardLogger()
	}
	return n.Log
}

// Sanitize removes parentheses and replaces every character that is not a
// letter, a digit, a space, '-', '_' or '.' with '-'.
func Sanitize(name string) string {
	name = strings.NewReplacer("(", "", ")", "").Replace(name)
	return strings.Map(func(r rune) rune {
		if allowed(r) {
			return r
		}
		return '-'
	}, name)
}

func allowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == ' ', r == '-', r == '_', r == '.':
		return true
	}
	return false
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
