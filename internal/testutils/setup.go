// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"io"
	"testing"

	luxlog "github.com/luxfi/log"
	"github.com/stretchr/testify/require"

	"github.com/stratalabs/sequencer-cli/pkg/application"
	"github.com/stratalabs/sequencer-cli/pkg/config"
	"github.com/stratalabs/sequencer-cli/pkg/ux"
)

func SetupTest(t *testing.T) *require.Assertions {
	t.Helper()
	// use io.Discard to not print anything
	ux.NewUserLog(luxlog.NewNoOpLogger(), io.Discard)
	return require.New(t)
}

func SetupTestInTempDir(t *testing.T) *application.Strata {
	t.Helper()
	testDir := t.TempDir()

	app := application.New()
	app.Setup(testDir, luxlog.NewNoOpLogger(), &config.Config{}, nil)
	ux.NewUserLog(luxlog.NewNoOpLogger(), io.Discard)
	return app
}
