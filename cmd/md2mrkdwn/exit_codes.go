package main

import (
	"errors"

	"github.com/bigbag/md2mrkdwn"
	"github.com/bigbag/md2mrkdwn/internal/config"
)

// Exit codes for the md2mrkdwn CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, ErrReadInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, md2mrkdwn.ErrInvalidHeaderStyle) ||
		errors.Is(err, md2mrkdwn.ErrInvalidLinkFormat) ||
		errors.Is(err, md2mrkdwn.ErrInvalidTableMode) ||
		errors.Is(err, md2mrkdwn.ErrInvalidRuleLength) {
		return ExitUsage
	}

	return ExitGeneral
}
