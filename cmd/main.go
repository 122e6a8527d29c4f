package main

import (
	"fmt"
	"io"
	"os"

	"gpxsplit-tools/gpxtools/config"
	"gpxsplit-tools/gpxtools/gpxio"
	"gpxsplit-tools/gpxtools/naming"
	"gpxsplit-tools/gpxtools/split"
	"gpxsplit-tools/gpxtools/terminal"

	term "golang.org/x/crypto/ssh/terminal"
)

func main() {
	colors := term.IsTerminal(int(os.Stderr.Fd()))
	if !run(os.Args[1:], os.Stdout, os.Stderr, colors) {
		os.Exit(1)
	}
}

// run executes one gpxsplit invocation and returns false if it failed
func run(args []string, stdout, stderr io.Writer, colors bool) bool {
	cfg, err := config.Load(args)
	if config.IsHelp(err) {
		fmt.Fprintln(stdout, err)
		return true
	}
	if err != nil {
		terminal.NewLogger(stderr, false, colors).Error(err)
		return false
	}
	log := terminal.NewLogger(stderr, cfg.Verbose, colors)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Errorf("could not create output directory '%s': %s", cfg.OutputDir, err)
		return false
	}

	namer := naming.New(cfg.OutputDir, log)
	namer.IncludeTime = cfg.IncludeTime
	namer.IncludeName = cfg.IncludeName
	namer.MaxLength = cfg.MaxFilenameLength

	s := &split.Splitter{
		Codec:     gpxio.New(),
		Namer:     namer,
		Threshold: cfg.Split,
		Log:       log,
	}

	sum, err := s.Run(cfg.Inputs)
	if err != nil {
		log.Error(err)
		return false
	}

	log.Debugf("%d file(s) split into %d track(s) and %d waypoint(s)", sum.Files, sum.Tracks, sum.Waypoints)
	return true
}
