// Command latch prints the windows of its input that begin with a line matching
// the start expression and end with a line matching the stop expression.
//
//	latch --start '^BEGIN' --stop '^END' app.log
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"
	"github.com/twipi/cfgutil"
)

var (
	cfg = Config{
		Start: os.Getenv("LATCH_START"),
		Stop:  os.Getenv("LATCH_STOP"),
	}
	verbosity = 0
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  %s [flags] [file]...\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		pflag.PrintDefaults()
	}
	pflag.StringVarP(&cfg.Start, "start", "s", cfg.Start, "regexp of the line that opens a window ($LATCH_START)")
	pflag.StringVarP(&cfg.Stop, "stop", "e", cfg.Stop, "regexp of the line that closes a window ($LATCH_STOP)")
	pflag.BoolVarP(&cfg.Count, "count", "c", cfg.Count, "print the number of latched lines only")
	pflag.CountVarP(&verbosity, "verbose", "v", "verbosity level: warn (0), info, debug")
	pflag.Parse()

	cfg.Files = pflag.Args()

	logger := newLogger(os.Stderr, verbosity, os.Getenv("NO_COLOR") != "")
	slog.SetDefault(logger)

	if err := run(cfg, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("latch failed", tint.Err(err))
		os.Exit(1)
	}
}

// newLogger logs warnings only by default, each -v lowers the level by one step.
func newLogger(w io.Writer, verbosity int, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:   cfgutil.VerbosityToLevel(slog.LevelWarn, verbosity),
		NoColor: noColor,
	}))
}
