// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nodecmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/stratalabs/sequencer-cli/pkg/constants"
	"github.com/stratalabs/sequencer-cli/pkg/docker"
)

var (
	follow    bool
	tailLines int
)

func newLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Tail the sequencer container logs",
		Long: `Tails the sequencer container logs through the compose tool.

EXAMPLES:
  strata node logs
  strata node logs -f
  strata node logs --tail 500`,
		Args: cobra.NoArgs,
		RunE: runLogs,
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "follow log output")
	cmd.Flags().IntVar(&tailLines, "tail", 100, "number of recent lines to show")

	return cmd
}

func runLogs(_ *cobra.Command, _ []string) error {
	if _, err := os.Stat(constants.ComposeFileName); err != nil {
		return constants.ErrManifestMissing
	}
	return docker.ComposeLogs(constants.ComposeFileName, tailLines, follow)
}
