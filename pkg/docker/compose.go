// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package docker

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/stratalabs/sequencer-cli/pkg/constants"
	"github.com/stratalabs/sequencer-cli/pkg/ux"
)

// lookPath, runCommand and streamCommand are variables for testing
// purposes to allow mocking subprocess execution
var (
	lookPath   = exec.LookPath
	runCommand = func(name string, args ...string) ([]byte, error) {
		cmd := exec.Command(name, args...)
		return cmd.CombinedOutput()
	}
	streamCommand = func(name string, args ...string) error {
		cmd := exec.Command(name, args...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}
)

// strategy is one way of invoking the orchestration tool. Strategies are
// tried in order and the first success short-circuits.
type strategy struct {
	name      string
	binary    string
	argPrefix []string
}

func strategies() []strategy {
	return []strategy{
		{name: "docker compose", binary: "docker", argPrefix: []string{"compose"}},
		{name: "docker-compose", binary: "docker-compose"},
	}
}

// ComposeUp brings the manifest up detached. On failure of the plugin
// invocation it falls back to the standalone binary when present; there
// is no retry and no cleanup of containers a failed attempt created.
func ComposeUp(composeFile string) error {
	var attempts []string
	for _, s := range strategies() {
		if _, err := lookPath(s.binary); err != nil {
			attempts = append(attempts, fmt.Sprintf("%s: not found", s.name))
			continue
		}
		args := append(append([]string{}, s.argPrefix...), "-f", composeFile, "up", "-d")
		out, err := runCommand(s.binary, args...)
		if err == nil {
			ux.Logger.GreenCheckmarkToUser("started via %s", s.name)
			return nil
		}
		attempts = append(attempts, fmt.Sprintf("%s: %s", s.name, strings.TrimSpace(string(out))))
	}
	return fmt.Errorf("%w: %s; inspect the container logs for details", constants.ErrLaunch, strings.Join(attempts, "; "))
}

// ComposeLogs tails the service logs to the terminal, following when
// asked. Uses the same strategy order as ComposeUp.
func ComposeLogs(composeFile string, tail int, follow bool) error {
	var attempts []string
	for _, s := range strategies() {
		if _, err := lookPath(s.binary); err != nil {
			attempts = append(attempts, fmt.Sprintf("%s: not found", s.name))
			continue
		}
		args := append(append([]string{}, s.argPrefix...), "-f", composeFile, "logs", "--tail", fmt.Sprint(tail))
		if follow {
			args = append(args, "-f")
		}
		err := streamCommand(s.binary, args...)
		if err == nil {
			return nil
		}
		attempts = append(attempts, fmt.Sprintf("%s: %v", s.name, err))
	}
	return fmt.Errorf("%w: %s", constants.ErrLaunch, strings.Join(attempts, "; "))
}

// IsContainerRunning reports whether a container with the exact name is
// listed by docker ps.
func IsContainerRunning(name string) (bool, error) {
	out, err := runCommand("docker", "ps", "--filter", "name="+name, "--format", "{{.Names}}")
	if err != nil {
		return false, fmt.Errorf("docker ps failed: %s", strings.TrimSpace(string(out)))
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) == name {
			return true, nil
		}
	}
	return false, nil
}
