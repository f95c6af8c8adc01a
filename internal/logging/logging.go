package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LevelEnv overrides the level chosen from Options.
const LevelEnv = "FEHTPL_LOG_LEVEL"

// Options selects where and how much the CLI logs.
type Options struct {
	Verbose bool
	// File appends JSON records to this path instead of writing text to Out.
	File string
	// Out defaults to stderr.
	Out io.Writer
}

// NewLogger returns a new logger and a func releasing its log file, if any.
func NewLogger(opts Options) (*logrus.Entry, func() error, error) {
	log := logrus.New()
	log.SetLevel(getLogLevel(opts.Verbose))

	closeFn := func() error { return nil }
	if opts.File != "" {
		file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		closeFn = file.Close
		log.SetOutput(file)
		log.Formatter = &logrus.JSONFormatter{}
	} else {
		out := opts.Out
		if out == nil {
			out = os.Stderr
		}
		log.SetOutput(out)
		log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	}

	return log.WithField("app", "fehtpl"), closeFn, nil
}

func getLogLevel(verbose bool) logrus.Level {
	if level, err := logrus.ParseLevel(os.Getenv(LevelEnv)); err == nil {
		return level
	}
	if verbose {
		return logrus.InfoLevel
	}
	return logrus.WarnLevel
}
