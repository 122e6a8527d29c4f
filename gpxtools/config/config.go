package config

import (
	"errors"

	"github.com/jessevdk/go-flags"
)

// Config holds the options of a gpxsplit run.
type Config struct {
	Split             float64
	IncludeTime       bool
	IncludeName       bool
	MaxFilenameLength int
	OutputDir         string
	Verbose           bool

	Inputs []string
}

// options mirrors Config on the command line. The time and name toggles are
// callbacks so that the last one given wins.
type options struct {
	Split             float64 `short:"s" long:"split" default:"300" env:"GPXSPLIT_SPLIT" value-name:"METERS" description:"Split tracks if points are greater than this distance apart (meters)"`
	Time              func()  `short:"T" long:"time" description:"Use time in output filenames (default)"`
	NoTime            func()  `short:"t" long:"no-time" description:"Do not use time in output filenames"`
	Name              func()  `short:"N" long:"name" description:"Use track/waypoint name in output filenames"`
	NoName            func()  `short:"n" long:"no-name" description:"Do not use track/waypoint name in output filenames (default)"`
	MaxFilenameLength int     `short:"l" long:"max-filename-length" default:"50" env:"GPXSPLIT_MAX_FILENAME_LENGTH" value-name:"CHARS" description:"Warn if output filename is longer than this number of characters, 0 disables the warning"`
	OutputDir         string  `short:"o" long:"output-dir" default:"." env:"GPXSPLIT_OUTPUT_DIR" value-name:"DIR" description:"Directory where output files are written"`
	Verbose           bool    `short:"v" long:"verbose" description:"Print debug information"`
}

// ErrNoInput is returned when no input file is given
var ErrNoInput = errors.New("at least one input .gpx file is required")

// Load parses command line arguments (without the program name) and
// environment variables into a newly allocated Config.
func Load(args []string) (*Config, error) {
	cfg := &Config{IncludeTime: true}

	opts := options{
		Time:   func() { cfg.IncludeTime = true },
		NoTime: func() { cfg.IncludeTime = false },
		Name:   func() { cfg.IncludeName = true },
		NoName: func() { cfg.IncludeName = false },
	}

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "gpxsplit"
	parser.Usage = "[OPTIONS] input..."

	inputs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, ErrNoInput
	}

	cfg.Split = opts.Split
	cfg.MaxFilenameLength = opts.MaxFilenameLength
	cfg.OutputDir = opts.OutputDir
	cfg.Verbose = opts.Verbose
	cfg.Inputs = inputs

	return cfg, nil
}

// IsHelp returns true if err is the help request raised by -h/--help. The
// error message then holds the usage text.
func IsHelp(err error) bool {
	var fe *flags.Error
	return errors.As(err, &fe) && fe.Type == flags.ErrHelp
}
