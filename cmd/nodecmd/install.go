// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nodecmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/stratalabs/sequencer-cli/pkg/constants"
	"github.com/stratalabs/sequencer-cli/pkg/dependencies"
	"github.com/stratalabs/sequencer-cli/pkg/deploy"
	"github.com/stratalabs/sequencer-cli/pkg/docker"
	"github.com/stratalabs/sequencer-cli/pkg/utils"
	"github.com/stratalabs/sequencer-cli/pkg/ux"
)

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install dependencies, configure and start the sequencer node",
		Long: `Installs everything a sequencer node host needs (Docker, the compose
plugin, Node.js and the strata toolchain), prompts for the operator
configuration, renders .env and docker-compose.yml into the current
directory and starts the node container.

Re-running overwrites both rendered files; manual edits are lost.`,
		Args: cobra.NoArgs,
		RunE: runInstall,
	}
}

func runInstall(_ *cobra.Command, _ []string) error {
	if err := utils.RequireRoot(); err != nil {
		return err
	}

	tracker := ux.NewProgressTracker(os.Stdout)
	apt := &dependencies.AptState{}
	for _, tool := range dependencies.All() {
		tracker.StartStep("Checking " + tool.Name)
		if err := dependencies.Ensure(app, apt, tool); err != nil {
			tracker.FailStep(tool.Name, err)
			return err
		}
		tracker.CompleteStep(tool.Name + " ready")
	}

	cfg, err := deploy.Collect(app)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	if err := deploy.WriteArtifacts(cfg, cwd); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("rendered %s and %s", constants.EnvFileName, constants.ComposeFileName)

	if err := docker.ComposeUp(constants.ComposeFileName); err != nil {
		return err
	}

	waitForContainer(tracker)
	ux.Logger.PrintLineSeparator()
	ux.Logger.PrintToUser("The node is starting. Follow it with 'strata node logs -f'")
	ux.Logger.PrintToUser("and check sync progress with 'strata node status'.")
	return nil
}

// waitForContainer polls docker ps for a bounded time so the operator
// gets early feedback. Not seeing the container is not fatal; compose
// already accepted the manifest.
func waitForContainer(tracker *ux.ProgressTracker) {
	bar := tracker.CreateProgressBar("waiting for the sequencer container", constants.LaunchPollAttempts)
	for i := 0; i < constants.LaunchPollAttempts; i++ {
		running, err := docker.IsContainerRunning(constants.SequencerContainerName)
		if bar != nil {
			_ = bar.Add(1)
		}
		if err == nil && running {
			if bar != nil {
				_ = bar.Finish()
			}
			ux.Logger.PrintToUser("")
			ux.Logger.GreenCheckmarkToUser("container %s is running", constants.SequencerContainerName)
			return
		}
		time.Sleep(constants.LaunchPollInterval)
	}
	ux.Logger.PrintToUser("")
	ux.Logger.WarnToUser("container %s is not listed yet; inspect 'strata node logs'", constants.SequencerContainerName)
}
