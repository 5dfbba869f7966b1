// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package dependencies

import (
	"fmt"

	"github.com/stratalabs/sequencer-cli/pkg/application"
	"github.com/stratalabs/sequencer-cli/pkg/constants"
)

// DockerTool gates the container runtime. The convenience script drives
// apt itself, so the install proc does not touch AptState.
func DockerTool() Tool {
	return Tool{
		Name:       "Docker",
		MinVersion: constants.MinDockerVersion,
		Detect:     BinaryDetect("docker", "--version"),
		Install: func(_ *application.Strata, _ *AptState) error {
			out, err := runCommand("sh", "-c", fmt.Sprintf("curl -fsSL %s | sh", constants.DockerInstallScriptURL))
			if err != nil {
				return fmt.Errorf("%w: docker convenience script: %s", constants.ErrPackageInstall, string(out))
			}
			return nil
		},
	}
}

// ComposeTool gates the compose plugin. Detection runs through the
// docker binary since the plugin has no PATH entry of its own.
func ComposeTool() Tool {
	return Tool{
		Name: "Docker Compose",
		Detect: func() (string, bool) {
			if _, err := lookPath("docker"); err != nil {
				return "", false
			}
			out, err := runCommand("docker", "compose", "version")
			if err != nil {
				return "", false
			}
			return string(out), true
		},
		Install: func(_ *application.Strata, apt *AptState) error {
			return AptInstall(apt, "docker-compose-plugin")
		},
	}
}

// NodeJSTool gates the JavaScript runtime the strata toolchain needs.
func NodeJSTool() Tool {
	return Tool{
		Name:       "Node.js",
		MinVersion: constants.MinNodeJSVersion,
		Detect:     BinaryDetect("node", "--version"),
		Install: func(_ *application.Strata, apt *AptState) error {
			out, err := runCommand("sh", "-c", fmt.Sprintf("curl -fsSL %s | bash -", constants.NodeSourceSetupURL))
			if err != nil {
				return fmt.Errorf("%w: nodesource setup script: %s", constants.ErrPackageInstall, string(out))
			}
			return AptInstall(apt, "nodejs")
		},
	}
}

// StrataTool gates the strata node toolchain. Any installed version is
// accepted; the toolchain manages its own updates.
func StrataTool() Tool {
	return Tool{
		Name:   "Strata toolchain",
		Detect: BinaryDetect("strata", "--version"),
		Install: func(_ *application.Strata, _ *AptState) error {
			out, err := runCommand("sh", "-c", fmt.Sprintf("curl -fsSL %s | bash", constants.StrataInstallURL))
			if err != nil {
				return fmt.Errorf("%w: %s", constants.ErrCLIInstall, string(out))
			}
			return nil
		},
	}
}

// All returns the tools the install flow ensures, in order.
func All() []Tool {
	return []Tool{
		DockerTool(),
		ComposeTool(),
		NodeJSTool(),
		StrataTool(),
	}
}
