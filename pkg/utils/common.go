// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"os"

	"github.com/stratalabs/sequencer-cli/pkg/constants"
)

// osGeteuid is a variable for testing purposes to allow mocking the euid
var osGeteuid = os.Geteuid

// RequireRoot errors unless the process runs with an effective uid of 0.
// Package installation and the docker socket both need it.
func RequireRoot() error {
	if osGeteuid() != 0 {
		return constants.ErrRequiresRoot
	}
	return nil
}
