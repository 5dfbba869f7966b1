// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	// Fatal: the process exits with status 1.
	ErrRequiresRoot   = errors.New("this command must be run with root privileges (try sudo)")
	ErrValidation     = errors.New("invalid configuration value")
	ErrCLIInstall     = errors.New("strata toolchain installation failed")
	ErrPackageInstall = errors.New("package installation failed")

	// Soft: reported to the operator, control returns to the menu.
	ErrLaunch              = errors.New("failed to start the sequencer container")
	ErrQuery               = errors.New("node RPC query failed")
	ErrManifestMissing     = errors.New("\n\nNo docker-compose.yml found in the current directory. To resolve this:\n- Run 'strata node install' to render the deployment files.\n- Or change into the directory where the node was installed.\n") //nolint:stylecheck
	ErrContainerNotRunning = errors.New("the sequencer container is not running")
)
