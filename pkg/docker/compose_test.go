// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package docker

import (
	"errors"
	"strings"
	"testing"

	"github.com/stratalabs/sequencer-cli/internal/testutils"
	"github.com/stratalabs/sequencer-cli/pkg/constants"
)

func withMocks(t *testing.T, look func(string) (string, error), run func(string, ...string) ([]byte, error)) {
	t.Helper()
	origLook := lookPath
	origRun := runCommand
	t.Cleanup(func() {
		lookPath = origLook
		runCommand = origRun
	})
	lookPath = look
	runCommand = run
}

func TestComposeUpPrimarySucceeds(t *testing.T) {
	require := testutils.SetupTest(t)

	var invocations [][]string
	withMocks(t,
		func(binary string) (string, error) { return "/usr/bin/" + binary, nil },
		func(name string, args ...string) ([]byte, error) {
			invocations = append(invocations, append([]string{name}, args...))
			return nil, nil
		},
	)

	require.NoError(ComposeUp("docker-compose.yml"))
	require.Len(invocations, 1)
	require.Equal([]string{"docker", "compose", "-f", "docker-compose.yml", "up", "-d"}, invocations[0])
}

func TestComposeUpFallsBackToStandalone(t *testing.T) {
	require := testutils.SetupTest(t)

	var invocations [][]string
	withMocks(t,
		func(binary string) (string, error) { return "/usr/bin/" + binary, nil },
		func(name string, args ...string) ([]byte, error) {
			invocations = append(invocations, append([]string{name}, args...))
			if name == "docker" {
				return []byte("unknown command: compose"), errors.New("exit status 125")
			}
			return nil, nil
		},
	)

	require.NoError(ComposeUp("docker-compose.yml"))
	require.Len(invocations, 2)
	require.Equal("docker-compose", invocations[1][0])
}

func TestComposeUpAllStrategiesFail(t *testing.T) {
	require := testutils.SetupTest(t)

	withMocks(t,
		func(binary string) (string, error) {
			if binary == "docker-compose" {
				return "", errors.New("not found")
			}
			return "/usr/bin/" + binary, nil
		},
		func(name string, args ...string) ([]byte, error) {
			return []byte("cannot connect to the docker daemon"), errors.New("exit status 1")
		},
	)

	err := ComposeUp("docker-compose.yml")
	require.ErrorIs(err, constants.ErrLaunch)
	require.True(strings.Contains(err.Error(), "docker daemon"))
	require.True(strings.Contains(err.Error(), "docker-compose: not found"))
}

func TestIsContainerRunning(t *testing.T) {
	type psTest struct {
		name     string
		psOutput string
		expected bool
	}

	tests := []psTest{
		{
			name:     "running",
			psOutput: "strata-sequencer\n",
			expected: true,
		},
		{
			name:     "not listed",
			psOutput: "",
			expected: false,
		},
		{
			name:     "prefix match is not enough",
			psOutput: "strata-sequencer-old\n",
			expected: false,
		},
		{
			name:     "listed among others",
			psOutput: "other\nstrata-sequencer\n",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := testutils.SetupTest(t)

			withMocks(t,
				func(binary string) (string, error) { return "/usr/bin/" + binary, nil },
				func(name string, args ...string) ([]byte, error) {
					return []byte(tt.psOutput), nil
				},
			)

			running, err := IsContainerRunning("strata-sequencer")
			require.NoError(err)
			require.Equal(tt.expected, running)
		})
	}
}

func TestIsContainerRunningDockerFails(t *testing.T) {
	require := testutils.SetupTest(t)

	withMocks(t,
		func(binary string) (string, error) { return "/usr/bin/" + binary, nil },
		func(name string, args ...string) ([]byte, error) {
			return []byte("permission denied"), errors.New("exit status 1")
		},
	)

	_, err := IsContainerRunning("strata-sequencer")
	require.Error(err)
	require.True(strings.Contains(err.Error(), "permission denied"))
}
