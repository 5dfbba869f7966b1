// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stratalabs/sequencer-cli/pkg/constants"
)

func TestRequireRoot(t *testing.T) {
	require := require.New(t)

	origGeteuid := osGeteuid
	defer func() { osGeteuid = origGeteuid }()

	osGeteuid = func() int { return 0 }
	require.NoError(RequireRoot())

	osGeteuid = func() int { return 1000 }
	require.ErrorIs(RequireRoot(), constants.ErrRequiresRoot)
}
