// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nodecmd

import (
	"github.com/spf13/cobra"

	"github.com/stratalabs/sequencer-cli/pkg/application"
)

var app *application.Strata

// NewCmd returns a new cobra.Command for sequencer node operations
func NewCmd(injectedApp *application.Strata) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Provision and monitor a Strata sequencer node",
		Long: `The node command suite provisions this host as an alpha-testnet
sequencer node and keeps an eye on it:

• Install system dependencies (Docker, Compose, Node.js, strata toolchain)
• Collect operator configuration and render .env + docker-compose.yml
• Start the node container and tail its logs
• Query the node's proven height and archive sync proof

Running 'strata node' without a subcommand opens the interactive menu.

Examples:
  # Provision and start a node in the current directory
  sudo strata node install

  # Watch the container logs
  strata node logs -f

  # Check sync status
  strata node status`,
		RunE: runMenu,
	}

	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newLogsCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newMenuCmd())

	return cmd
}
