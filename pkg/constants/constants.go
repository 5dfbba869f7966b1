// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import (
	"time"
)

const (
	DefaultPerms755        = 0o755
	WriteReadReadPerms     = 0o644
	WriteReadUserOnlyPerms = 0o600

	BaseDirName = ".strata-cli"
	LogDir      = "logs"

	DefaultConfigFileName = "cli"
	DefaultConfigFileType = "json"

	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	APIRequestTimeout = 30 * time.Second
	IPLookupTimeout   = 5 * time.Second

	// Deployment artifacts, relative to the operator's working directory.
	EnvFileName     = ".env"
	ComposeFileName = "docker-compose.yml"
	DataDirName     = "data"

	// Sequencer container.
	SequencerImage         = "stratalabs/sequencer:2.0.2"
	SequencerContainerName = "strata-sequencer"
	SequencerNetwork       = "alpha-testnet"
	SequencerDataMount     = "/data"

	// The node exposes its admin JSON-RPC on the host network.
	NodeRPCEndpoint = "http://localhost:8080"

	DefaultNodeLogLevel = "info"

	// Public IP resolution for the P2P announce address.
	IPLookupURL      = "https://api.ipify.org"
	FallbackPublicIP = "127.0.0.1"

	// Minimum tool versions gated by the installer.
	MinDockerVersion = "20.10.0"
	MinNodeJSVersion = "18.0.0"

	// Install endpoints for tools the installer fetches over the network.
	DockerInstallScriptURL = "https://get.docker.com"
	NodeSourceSetupURL     = "https://deb.nodesource.com/setup_22.x"
	StrataInstallURL       = "https://install.strata.network"

	// How long the launcher polls for the container to come up.
	LaunchPollAttempts = 10
	LaunchPollInterval = 2 * time.Second
)
