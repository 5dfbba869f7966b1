// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deploy

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"text/template"

	"github.com/stratalabs/sequencer-cli/pkg/constants"
)

//go:embed templates/*
var templates embed.FS

// composeInputs feeds the manifest template. Everything beyond the
// NodeConfig is pinned by constants so rendering stays deterministic.
type composeInputs struct {
	*NodeConfig
	Image         string
	ContainerName string
	Network       string
	DataHostDir   string
	DataMount     string
}

func renderTemplate(templateName string, data interface{}) ([]byte, error) {
	templateBytes, err := templates.ReadFile(templateName)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New("config").Parse(string(templateBytes))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// RenderEnv renders the KEY="value" env file. The key set is fixed;
// BLOB_SINK_URL is appended only when a blob sink was supplied.
func RenderEnv(cfg *NodeConfig) ([]byte, error) {
	return renderTemplate("templates/node.env.tmpl", cfg)
}

// RenderCompose renders the single-service compose manifest. Values are
// referenced indirectly via ${VAR} and resolved by compose from the env
// file at orchestration time, not here.
func RenderCompose(cfg *NodeConfig) ([]byte, error) {
	return renderTemplate("templates/docker-compose.yml.tmpl", composeInputs{
		NodeConfig:    cfg,
		Image:         constants.SequencerImage,
		ContainerName: constants.SequencerContainerName,
		Network:       constants.SequencerNetwork,
		DataHostDir:   "./" + constants.DataDirName,
		DataMount:     constants.SequencerDataMount,
	})
}

// WriteArtifacts validates cfg, then overwrites the env file and compose
// manifest under dir and creates the data directory. Prior file contents
// are not consulted; re-running replaces any manual edits.
func WriteArtifacts(cfg *NodeConfig, dir string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	env, err := RenderEnv(cfg)
	if err != nil {
		return err
	}
	compose, err := RenderCompose(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Join(dir, constants.DataDirName), constants.DefaultPerms755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, constants.EnvFileName), env, constants.WriteReadUserOnlyPerms); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, constants.ComposeFileName), compose, constants.WriteReadReadPerms)
}
