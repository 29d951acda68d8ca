package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"findmax/internal/config"
	"findmax/internal/maxfinder"
	"findmax/internal/param"
	"findmax/internal/render"
)

// invalidInputError marks a failure caused by the input parameter rather than
// the program itself. It maps to exit status 2, the EINVAL analogue.
type invalidInputError struct {
	err error
}

func (e *invalidInputError) Error() string { return e.err.Error() }
func (e *invalidInputError) Unwrap() error { return e.err }

// exitCode maps an error to the process exit status: 2 for invalid input,
// 1 for everything else.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var invalid *invalidInputError
	if errors.As(err, &invalid) {
		return 2
	}
	return 1
}

// runScan parses the input, scans it, and logs the report lines.
func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger.Info("Find Max: initializing")

	input := resolveInput(cfg, args)
	values, err := param.ParseList(input)
	if err != nil {
		logger.Error("Invalid input parameter", zap.String("input", input), zap.Error(err))
		return &invalidInputError{err}
	}

	result, err := maxfinder.Find(values)
	if err != nil {
		switch {
		case errors.Is(err, maxfinder.ErrEmptyInput):
			logger.Error("No elements provided. Please provide data like: --input 1,2,3")
			return &invalidInputError{err}
		case errors.Is(err, maxfinder.ErrTooManyElements):
			logger.Error("Element count exceeds maximum allowed size",
				zap.Int("count", len(values)),
				zap.Int("max", maxfinder.MaxElements))
			return &invalidInputError{err}
		case errors.Is(err, maxfinder.ErrNoIndices):
			// Internal invariant violation, not a user error.
			logger.Error("Internal fault: no index found for the maximum value (this should not happen)")
			return fmt.Errorf("internal fault: %w", err)
		default:
			return err
		}
	}

	report(cfg, values, result)
	return nil
}

// report logs the three result lines at info, with warnings for any bounded
// degradation along the way.
func report(cfg *config.Config, values []int32, result maxfinder.Result) {
	lines, truncated := render.Lines(values, result, cfg.Render.BufferSize)
	for _, line := range lines {
		logger.Info(line)
	}
	if truncated {
		logger.Warn("Output truncated to fit render buffer",
			zap.Int("buffer_size", cfg.Render.BufferSize))
	}
	if result.IndicesTruncated {
		logger.Warn("More occurrences of max value found than index storage allows",
			zap.Int("stored", len(result.Indices)))
	}
}

// resolveInput picks the input source: flag, then positional argument, then
// config (which already carries the FINDMAX_INPUT override).
func resolveInput(cfg *config.Config, args []string) string {
	if inputFlag != "" {
		return inputFlag
	}
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Input
}
