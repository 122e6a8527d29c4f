package terminal_test

import (
	"bytes"
	"testing"

	"gpxsplit-tools/gpxtools/terminal"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		log  func(l *logrus.Logger)
		want string
	}{
		"warning": {
			log:  func(l *logrus.Logger) { l.Warnf("%s greater than %d characters.", "a_long_name.gpx", 5) },
			want: "Warning: a_long_name.gpx greater than 5 characters.\n",
		},
		"error": {
			log:  func(l *logrus.Logger) { l.Error("boom") },
			want: "Error: boom\n",
		},
		"fields_sorted": {
			log:  func(l *logrus.Logger) { l.WithFields(logrus.Fields{"points": 3, "file": "a.gpx"}).Info("wrote") },
			want: "wrote file=a.gpx points=3\n",
		},
		"debug_hidden": {
			log:  func(l *logrus.Logger) { l.Debug("hidden") },
			want: "",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			b := &bytes.Buffer{}
			tc.log(terminal.NewLogger(b, false, false))
			require.Equal(tc.want, b.String())
		})
	}
}

func TestVerboseAndColors(t *testing.T) {
	require := require.New(t)

	b := &bytes.Buffer{}
	l := terminal.NewLogger(b, true, true)
	l.Debug("shown")
	l.Warn("careful")

	require.Equal("\033[37mshown\033[0m\n\033[33mWarning: careful\033[0m\n", b.String())
}
