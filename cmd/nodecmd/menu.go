// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nodecmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/stratalabs/sequencer-cli/pkg/constants"
	"github.com/stratalabs/sequencer-cli/pkg/ux"
)

const (
	menuInstall = "1) Install and start the sequencer node"
	menuLogs    = "2) Show node logs"
	menuStatus  = "3) Check sync status"
	menuExit    = "4) Exit"
)

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu for node operations",
		Args:  cobra.NoArgs,
		RunE:  runMenu,
	}
}

func runMenu(cmd *cobra.Command, args []string) error {
	for {
		choice, err := app.Prompt.CaptureList(
			"Strata sequencer node",
			[]string{menuInstall, menuLogs, menuStatus, menuExit},
		)
		if err != nil {
			return err
		}

		switch choice {
		case menuInstall:
			err = runInstall(cmd, args)
		case menuLogs:
			err = runLogs(cmd, args)
		case menuStatus:
			err = runStatus(cmd, args)
		case menuExit:
			ux.Logger.PrintToUser("Goodbye.")
			return nil
		}

		if err != nil {
			if !isSoftError(err) {
				return err
			}
			ux.Logger.RedXToUser("%s", err)
		}
	}
}

// isSoftError reports whether control returns to the menu. Launch and
// query failures leave the deployment as-is and are worth retrying;
// privilege, validation and install failures end the process.
func isSoftError(err error) bool {
	return errors.Is(err, constants.ErrLaunch) ||
		errors.Is(err, constants.ErrQuery) ||
		errors.Is(err, constants.ErrManifestMissing) ||
		errors.Is(err, constants.ErrContainerNotRunning)
}
