// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/require"
)

func TestCaptureYesNo(t *testing.T) {
	require := require.New(t)

	origSelect := promptUISelectRunner
	defer func() { promptUISelectRunner = origSelect }()

	promptUISelectRunner = func(sel promptui.Select) (int, string, error) {
		return 0, Yes, nil
	}
	got, err := NewPrompter().CaptureYesNo("continue?")
	require.NoError(err)
	require.True(got)

	promptUISelectRunner = func(sel promptui.Select) (int, string, error) {
		return 1, No, nil
	}
	got, err = NewPrompter().CaptureYesNo("continue?")
	require.NoError(err)
	require.False(got)
}

func TestCaptureList(t *testing.T) {
	require := require.New(t)

	origSelect := promptUISelectRunner
	defer func() { promptUISelectRunner = origSelect }()

	promptUISelectRunner = func(sel promptui.Select) (int, string, error) {
		return 2, "third", nil
	}
	got, err := NewPrompter().CaptureList("pick one", []string{"first", "second", "third"})
	require.NoError(err)
	require.Equal("third", got)
}

func TestCaptureURLValidates(t *testing.T) {
	require := require.New(t)

	origRunner := promptUIRunner
	defer func() { promptUIRunner = origRunner }()

	promptUIRunner = func(prompt promptui.Prompt) (string, error) {
		if err := prompt.Validate("not-a-url"); err != nil {
			return "", err
		}
		return "not-a-url", nil
	}
	_, err := NewPrompter().CaptureURL("EL RPC URL")
	require.Error(err)

	promptUIRunner = func(prompt promptui.Prompt) (string, error) {
		if err := prompt.Validate("https://rpc.example.com"); err != nil {
			return "", err
		}
		return "https://rpc.example.com", nil
	}
	got, err := NewPrompter().CaptureURL("EL RPC URL")
	require.NoError(err)
	require.Equal("https://rpc.example.com", got)
}

func TestCaptureSecretRejectsEmpty(t *testing.T) {
	require := require.New(t)

	origRunner := promptUIRunner
	defer func() { promptUIRunner = origRunner }()

	promptUIRunner = func(prompt promptui.Prompt) (string, error) {
		return "", prompt.Validate("")
	}
	_, err := NewPrompter().CaptureSecret("validator private key")
	require.Error(err)
}

func TestNonInteractivePrompterFailsFast(t *testing.T) {
	require := require.New(t)

	p := NewNonInteractivePrompter()
	_, err := p.CaptureString("anything")
	require.True(errors.Is(err, ErrNonInteractive))
	_, err = p.CaptureURL("anything")
	require.True(errors.Is(err, ErrNonInteractive))
	_, err = p.CaptureList("anything", []string{"a"})
	require.True(errors.Is(err, ErrNonInteractive))
}
