package main

import (
	"errors"
	"os"

	contractgen "github.com/alnah/go-contractgen"
	"github.com/alnah/go-contractgen/internal/config"
)

// Exit codes for the contractgen CLI.
// 0 also covers runs where HTML or PDF could not be produced.
const (
	ExitSuccess = 0 // Markdown written (help and version too)
	ExitGeneral = 1 // Missing or invalid field, or any other failure before output
	ExitUsage   = 2 // Invalid control flags or settings
	ExitIO      = 3 // Output directory or Markdown file could not be written
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, contractgen.ErrOutputDir) ||
		errors.Is(err, contractgen.ErrWriteMarkdown) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/settings errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, contractgen.ErrInvalidOption) ||
		errors.Is(err, contractgen.ErrUnknownEngine) ||
		errors.Is(err, contractgen.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
