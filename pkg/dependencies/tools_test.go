// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package dependencies

import (
	"errors"
	"testing"

	"github.com/stratalabs/sequencer-cli/internal/testutils"
	"github.com/stratalabs/sequencer-cli/pkg/constants"
)

func TestStrataToolInstallFailureIsFatalError(t *testing.T) {
	require := testutils.SetupTest(t)

	origRun := runCommand
	defer func() { runCommand = origRun }()
	runCommand = func(name string, args ...string) ([]byte, error) {
		return []byte("curl: (6) Could not resolve host"), errors.New("exit status 6")
	}

	err := StrataTool().Install(nil, &AptState{})
	require.ErrorIs(err, constants.ErrCLIInstall)
	require.Contains(err.Error(), "Could not resolve host")
}

func TestComposeToolDetect(t *testing.T) {
	require := testutils.SetupTest(t)

	origLook := lookPath
	origRun := runCommand
	defer func() {
		lookPath = origLook
		runCommand = origRun
	}()

	// docker present, plugin answers
	lookPath = func(string) (string, error) { return "/usr/bin/docker", nil }
	runCommand = func(name string, args ...string) ([]byte, error) {
		return []byte("Docker Compose version v2.29.1"), nil
	}
	out, present := ComposeTool().Detect()
	require.True(present)
	require.Equal("2.29.1", ExtractVersion(out))

	// docker present, plugin missing
	runCommand = func(name string, args ...string) ([]byte, error) {
		return []byte("docker: 'compose' is not a docker command"), errors.New("exit status 1")
	}
	_, present = ComposeTool().Detect()
	require.False(present)

	// docker itself missing
	lookPath = func(string) (string, error) { return "", errors.New("not found") }
	_, present = ComposeTool().Detect()
	require.False(present)
}

func TestAllToolOrder(t *testing.T) {
	require := testutils.SetupTest(t)

	tools := All()
	require.Len(tools, 4)
	require.Equal("Docker", tools[0].Name)
	require.Equal("Docker Compose", tools[1].Name)
	require.Equal("Node.js", tools[2].Name)
	require.Equal("Strata toolchain", tools[3].Name)
}
