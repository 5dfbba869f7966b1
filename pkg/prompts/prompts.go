// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"

	"github.com/manifoldco/promptui"
)

const (
	Yes = "Yes"
	No  = "No"
)

// promptUIRunner is a variable for testing purposes to allow mocking prompt.Run()
var promptUIRunner = func(prompt promptui.Prompt) (string, error) {
	return prompt.Run()
}

// promptUISelectRunner is a variable for testing purposes to allow mocking select.Run()
var promptUISelectRunner = func(sel promptui.Select) (int, string, error) {
	return sel.Run()
}

type Prompter interface {
	CaptureString(promptStr string) (string, error)
	CaptureStringAllowEmpty(promptStr string) (string, error)
	CaptureURL(promptStr string) (string, error)
	CaptureSecret(promptStr string) (string, error)
	CaptureYesNo(promptStr string) (bool, error)
	CaptureList(promptStr string, options []string) (string, error)
}

type realPrompter struct{}

// NewPrompter returns the standard interactive prompter.
func NewPrompter() Prompter {
	return &realPrompter{}
}

func (*realPrompter) CaptureString(promptStr string) (string, error) {
	prompt := promptui.Prompt{
		Label: promptStr,
		Validate: func(input string) error {
			if input == "" {
				return errors.New("string cannot be empty")
			}
			return nil
		},
	}

	return promptUIRunner(prompt)
}

func (*realPrompter) CaptureStringAllowEmpty(promptStr string) (string, error) {
	prompt := promptui.Prompt{
		Label: promptStr,
	}

	return promptUIRunner(prompt)
}

func (*realPrompter) CaptureURL(promptStr string) (string, error) {
	prompt := promptui.Prompt{
		Label:    promptStr,
		Validate: ValidateURLFormat,
	}

	return promptUIRunner(prompt)
}

// CaptureSecret prompts for a sensitive value without echoing it back.
func (*realPrompter) CaptureSecret(promptStr string) (string, error) {
	prompt := promptui.Prompt{
		Label: promptStr,
		Mask:  '*',
		Validate: func(input string) error {
			if input == "" {
				return errors.New("value cannot be empty")
			}
			return nil
		},
	}

	return promptUIRunner(prompt)
}

func (*realPrompter) CaptureYesNo(promptStr string) (bool, error) {
	prompt := promptui.Select{
		Label: promptStr,
		Items: []string{Yes, No},
	}

	_, decision, err := promptUISelectRunner(prompt)
	if err != nil {
		return false, err
	}
	return decision == Yes, nil
}

func (*realPrompter) CaptureList(promptStr string, options []string) (string, error) {
	prompt := promptui.Select{
		Label: promptStr,
		Items: options,
	}
	_, listDecision, err := promptUISelectRunner(prompt)
	if err != nil {
		return "", err
	}
	return listDecision, nil
}
