package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/adamluzsi/latch/iterators"
	"github.com/adamluzsi/latch/pkg/errorkit"
)

// run prints the latched windows of the input lines to stdout.
func run(cfg Config, stdin io.Reader, stdout io.Writer, logger *slog.Logger) (rErr error) {
	m, err := cfg.compile()
	if err != nil {
		return err
	}

	src := lines(stdin, cfg.Files)
	latched := iterators.Latch(src,
		func(l line) bool {
			if !m.start.MatchString(l.Text) {
				return false
			}
			logger.Debug("window opened", "file", l.File, "line", l.No)
			return true
		},
		func(l line) bool {
			if !m.stop.MatchString(l.Text) {
				return false
			}
			logger.Debug("window closed", "file", l.File, "line", l.No)
			return true
		})
	texts := iterators.Map(latched, func(l line) (string, error) {
		return l.Text, nil
	})
	defer errorkit.Finish(&rErr, texts.Close)

	out := bufio.NewWriter(stdout)
	defer errorkit.Finish(&rErr, out.Flush)

	var emitted int
	for texts.Next() {
		emitted++
		if cfg.Count {
			continue
		}
		if _, err := fmt.Fprintln(out, texts.Value()); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	if err := texts.Err(); err != nil {
		return err
	}

	logger.Info("input processed", "emitted", emitted)
	if cfg.Count {
		if _, err := fmt.Fprintln(out, emitted); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}
