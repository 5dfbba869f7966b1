// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"path/filepath"

	luxlog "github.com/luxfi/log"

	"github.com/stratalabs/sequencer-cli/pkg/config"
	"github.com/stratalabs/sequencer-cli/pkg/constants"
	"github.com/stratalabs/sequencer-cli/pkg/prompts"
)

// Strata carries the wiring every command needs: the file logger, the
// CLI config, and the prompter. Injected into command constructors.
type Strata struct {
	Log     luxlog.Logger
	baseDir string
	Conf    *config.Config
	Prompt  prompts.Prompter
}

func New() *Strata {
	return &Strata{}
}

func (app *Strata) Setup(baseDir string, log luxlog.Logger, conf *config.Config, prompt prompts.Prompter) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Prompt = prompt
}

func (app *Strata) GetBaseDir() string {
	return app.baseDir
}

func (app *Strata) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}
