package terminal

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	gray   = "\033[37m"
)

// Formatter prints one line per entry, colored by level, followed by the
// entry fields in key order.
type Formatter struct {
	DisableColors bool
}

// Format implements logrus.Formatter
func (f *Formatter) Format(e *logrus.Entry) ([]byte, error) {
	b := &bytes.Buffer{}

	color := levelColor(e.Level)
	if f.DisableColors {
		color = ""
	}

	fmt.Fprintf(b, "%s%s", color, prefix(e.Level))
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, e.Data[k])
	}

	if color != "" {
		b.WriteString(reset)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// NewLogger creates a logger writing to w. Debug entries are only printed
// when verbose is set.
func NewLogger(w io.Writer, verbose, colors bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&Formatter{DisableColors: !colors})
	l.SetLevel(logrus.InfoLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

func prefix(level logrus.Level) string {
	switch level {
	case logrus.WarnLevel:
		return "Warning: "
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return "Error: "
	}
	return ""
}

func levelColor(level logrus.Level) string {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return gray
	case logrus.InfoLevel:
		return green
	case logrus.WarnLevel:
		return yellow
	default:
		return red
	}
}
