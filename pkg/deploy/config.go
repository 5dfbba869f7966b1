// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deploy

import (
	"fmt"

	"github.com/stratalabs/sequencer-cli/pkg/application"
	"github.com/stratalabs/sequencer-cli/pkg/constants"
	"github.com/stratalabs/sequencer-cli/pkg/prompts"
	"github.com/stratalabs/sequencer-cli/pkg/utils"
	"github.com/stratalabs/sequencer-cli/pkg/ux"
)

// publicIPLookup is a variable for testing purposes to allow mocking the
// external lookup
var publicIPLookup = utils.PublicIP

// NodeConfig holds everything the rendered artifacts need. Built once
// per install run and never mutated after rendering; the env file on
// disk is the durable copy.
type NodeConfig struct {
	EthereumHosts       string
	ConsensusHosts      string
	ValidatorPrivateKey string
	BlobSinkURL         string
	P2PIP               string
	LogLevel            string
	DataDirectory       string
}

// Validate re-checks the operator-supplied shape before anything is
// written to disk.
func (cfg *NodeConfig) Validate() error {
	if err := prompts.ValidateURLFormat(cfg.EthereumHosts); err != nil {
		return fmt.Errorf("%w: execution layer RPC: %v", constants.ErrValidation, err)
	}
	if err := prompts.ValidateURLFormat(cfg.ConsensusHosts); err != nil {
		return fmt.Errorf("%w: consensus layer RPC: %v", constants.ErrValidation, err)
	}
	if err := prompts.ValidateNonEmpty(cfg.ValidatorPrivateKey); err != nil {
		return fmt.Errorf("%w: validator private key: %v", constants.ErrValidation, err)
	}
	if cfg.BlobSinkURL != "" {
		if err := prompts.ValidateURLFormat(cfg.BlobSinkURL); err != nil {
			return fmt.Errorf("%w: blob sink URL: %v", constants.ErrValidation, err)
		}
	}
	return nil
}

// Collect prompts the operator for the node configuration, resolves the
// P2P announce address and fills in the fixed defaults.
func Collect(app *application.Strata) (*NodeConfig, error) {
	el, err := app.Prompt.CaptureURL("Execution layer (EL) RPC URL")
	if err != nil {
		return nil, err
	}
	cl, err := app.Prompt.CaptureURL("Consensus layer (CL) RPC URL")
	if err != nil {
		return nil, err
	}
	key, err := app.Prompt.CaptureSecret("Validator private key")
	if err != nil {
		return nil, err
	}
	blobSink, err := app.Prompt.CaptureStringAllowEmpty("Blob sink URL (optional, leave empty to skip)")
	if err != nil {
		return nil, err
	}

	cfg := &NodeConfig{
		EthereumHosts:       el,
		ConsensusHosts:      cl,
		ValidatorPrivateKey: key,
		BlobSinkURL:         blobSink,
		P2PIP:               ResolveP2PIP(),
		LogLevel:            constants.DefaultNodeLogLevel,
		DataDirectory:       constants.SequencerDataMount,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolveP2PIP returns the host's public IP, or the loopback fallback
// when the lookup fails. The fallback keeps provisioning going but the
// node will not be reachable from the network until P2P_IP is fixed in
// the env file.
func ResolveP2PIP() string {
	ip, err := publicIPLookup()
	if err != nil {
		ux.Logger.WarnToUser("could not determine public IP (%v); falling back to %s", err, constants.FallbackPublicIP)
		ux.Logger.WarnToUser("the node will not be reachable from the network until P2P_IP is corrected in %s", constants.EnvFileName)
		return constants.FallbackPublicIP
	}
	return ip
}
