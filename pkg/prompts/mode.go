// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Environment variable names for non-interactive mode.
const (
	// EnvNonInteractive forces non-interactive mode.
	// Set to "1", "true", "yes", or "on" to enable.
	EnvNonInteractive = "STRATA_NON_INTERACTIVE"

	// EnvCI is a common CI environment variable.
	// When truthy, implies non-interactive.
	EnvCI = "CI"
)

// isTruthyEnv checks if an environment variable is set to a truthy value.
// Accepts: 1, true, t, yes, y, on (case-insensitive)
func isTruthyEnv(key string) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	default:
		return false
	}
}

// stdinIsTTY returns true if stdin is a terminal (TTY).
func stdinIsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsInteractive returns true if prompting is allowed.
//
// Interactive mode is enabled when ALL of:
//   - stdin is a TTY (not piped/redirected)
//   - STRATA_NON_INTERACTIVE is not truthy
//   - CI is not truthy
func IsInteractive() bool {
	if isTruthyEnv(EnvNonInteractive) {
		return false
	}
	if isTruthyEnv(EnvCI) {
		return false
	}
	return stdinIsTTY()
}

// NewPrompterForMode returns the appropriate prompter based on mode.
//
// If non-interactive, returns NonInteractivePrompter that fails fast.
// If interactive (TTY), returns the standard realPrompter that can prompt.
func NewPrompterForMode(nonInteractiveFlag bool) Prompter {
	if nonInteractiveFlag || !IsInteractive() {
		return NewNonInteractivePrompter()
	}
	return NewPrompter()
}
