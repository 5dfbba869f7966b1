// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompts

import (
	"errors"
	"fmt"
)

// ErrNonInteractive is returned when a prompt is attempted in non-interactive mode.
// Commands should catch this error and provide actionable guidance.
var ErrNonInteractive = errors.New("cannot prompt in non-interactive mode")

// NonInteractivePrompter implements Prompter but fails fast on any prompt attempt.
// Use this in CI/script environments to detect missing input early.
type NonInteractivePrompter struct{}

// NewNonInteractivePrompter creates a prompter that fails fast on any interaction.
func NewNonInteractivePrompter() *NonInteractivePrompter {
	return &NonInteractivePrompter{}
}

func (p *NonInteractivePrompter) fail(operation string) error {
	return fmt.Errorf("%w: %s - run from a terminal, or unset %s", ErrNonInteractive, operation, EnvNonInteractive)
}

func (p *NonInteractivePrompter) CaptureString(promptStr string) (string, error) {
	return "", p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureStringAllowEmpty(promptStr string) (string, error) {
	return "", p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureURL(promptStr string) (string, error) {
	return "", p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureSecret(promptStr string) (string, error) {
	return "", p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureYesNo(promptStr string) (bool, error) {
	return false, p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureList(promptStr string, options []string) (string, error) {
	return "", p.fail(promptStr)
}
