// Command plottools styles scientific figures and checks figure-script
// conventions.
//
// Configuration is loaded from environment variables:
//   - PLOTTOOLS_DIR: default figure directory for check (optional)
//   - PLOTTOOLS_STYLE: default style preset (optional, default "screen")
//   - PLOTTOOLS_PALETTE: path to a custom palette file (optional)
//   - PLOTTOOLS_DEBUG: enable debug logging (optional)
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"

	"github.com/jgrewe/plottools"
)

// CLI exit codes for standardized error reporting.
const (
	// ExitSuccess indicates the operation completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitInvalidArgs indicates invalid command line arguments or an
	// unknown style or series name.
	ExitInvalidArgs = 2

	// ExitViolations indicates the convention check found violations.
	ExitViolations = 3

	// ExitBadData indicates a data or palette file could not be read.
	ExitBadData = 4

	// ExitStorageError indicates a filesystem operation failed.
	ExitStorageError = 5
)

// envConfig is the environment surface of the CLI.
type envConfig struct {
	Dir     string `env:"PLOTTOOLS_DIR"`
	Style   string `env:"PLOTTOOLS_STYLE" envDefault:"screen"`
	Palette string `env:"PLOTTOOLS_PALETTE"`
	Debug   bool   `env:"PLOTTOOLS_DEBUG"`
}

func main() {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		fmt.Fprintf(os.Stderr, "Error: parsing environment: %v\n", err)
		os.Exit(ExitInvalidArgs)
	}

	logger := log.New(os.Stderr)
	if ec.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg := plottools.Config{
		AppName:     "plottools",
		FigureDir:   ec.Dir,
		StyleName:   ec.Style,
		PalettePath: ec.Palette,
	}

	cmd := plottools.NewCommand(cfg, plottools.WithLogger(&logAdapter{logger}))
	if err := cmd.Execute(); err != nil {
		os.Exit(exitCodeFromError(err))
	}
}

// logAdapter bridges charmbracelet/log to the plottools Logger
// interface, which takes string messages.
type logAdapter struct {
	l *log.Logger
}

func (a *logAdapter) Debug(msg string, keysAndValues ...any) { a.l.Debug(msg, keysAndValues...) }
func (a *logAdapter) Info(msg string, keysAndValues ...any)  { a.l.Info(msg, keysAndValues...) }
func (a *logAdapter) Warn(msg string, keysAndValues ...any)  { a.l.Warn(msg, keysAndValues...) }
func (a *logAdapter) Error(msg string, keysAndValues ...any) { a.l.Error(msg, keysAndValues...) }

// exitCodeFromError maps error types to exit codes.
func exitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, plottools.ErrViolations):
		return ExitViolations
	case errors.Is(err, plottools.ErrUnknownStyle),
		errors.Is(err, plottools.ErrUnknownSeries),
		errors.Is(err, plottools.ErrUnknownColor),
		errors.Is(err, plottools.ErrNotDirectory):
		return ExitInvalidArgs
	case errors.Is(err, plottools.ErrBadNPZ),
		errors.Is(err, plottools.ErrUnsupportedData),
		errors.Is(err, plottools.ErrInvalidPalette),
		errors.Is(err, plottools.ErrInvalidColor):
		return ExitBadData
	case errors.Is(err, plottools.ErrStorageError):
		return ExitStorageError
	default:
		return ExitGeneralError
	}
}
