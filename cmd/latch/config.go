package main

import (
	"regexp"

	"github.com/adamluzsi/latch/pkg/errorkit"
)

const (
	ErrMissingStart errorkit.Error = "missing start expression"
	ErrMissingStop  errorkit.Error = "missing stop expression"
	ErrBadPattern   errorkit.Error = "invalid expression"
)

// Config is the runtime configuration of the command, collected from flags and the environment.
type Config struct {
	Start string
	Stop  string
	// Count prints the number of latched lines instead of the lines themselves.
	Count bool
	// Files to read in order; stdin is used when empty or for "-".
	Files []string
}

type matchers struct {
	start *regexp.Regexp
	stop  *regexp.Regexp
}

func (c Config) compile() (matchers, error) {
	if c.Start == "" {
		return matchers{}, ErrMissingStart
	}
	if c.Stop == "" {
		return matchers{}, ErrMissingStop
	}
	start, err := regexp.Compile(c.Start)
	if err != nil {
		return matchers{}, ErrBadPattern.F("start: %w", err)
	}
	stop, err := regexp.Compile(c.Stop)
	if err != nil {
		return matchers{}, ErrBadPattern.F("stop: %w", err)
	}
	return matchers{start: start, stop: stop}, nil
}
