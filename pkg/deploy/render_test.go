// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deploy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stratalabs/sequencer-cli/internal/testutils"
	"github.com/stratalabs/sequencer-cli/pkg/constants"
)

func validConfig() *NodeConfig {
	return &NodeConfig{
		EthereumHosts:       "https://eth.example.com:8545",
		ConsensusHosts:      "https://beacon.example.com",
		ValidatorPrivateKey: "0xdeadbeef",
		P2PIP:               "203.0.113.7",
		LogLevel:            constants.DefaultNodeLogLevel,
		DataDirectory:       constants.SequencerDataMount,
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	require := testutils.SetupTest(t)

	cfg := validConfig()
	cfg.BlobSinkURL = "https://blobs.example.com"

	env1, err := RenderEnv(cfg)
	require.NoError(err)
	env2, err := RenderEnv(cfg)
	require.NoError(err)
	require.Equal(env1, env2)

	compose1, err := RenderCompose(cfg)
	require.NoError(err)
	compose2, err := RenderCompose(cfg)
	require.NoError(err)
	require.Equal(compose1, compose2)
}

func TestRenderEnvKeySet(t *testing.T) {
	require := testutils.SetupTest(t)

	env, err := RenderEnv(validConfig())
	require.NoError(err)

	out := string(env)
	require.Contains(out, `ETHEREUM_HOSTS="https://eth.example.com:8545"`)
	require.Contains(out, `L1_CONSENSUS_HOST_URLS="https://beacon.example.com"`)
	require.Contains(out, `P2P_IP="203.0.113.7"`)
	require.Contains(out, `VALIDATOR_PRIVATE_KEY="0xdeadbeef"`)
	require.Contains(out, `DATA_DIRECTORY="/data"`)
	require.Contains(out, `LOG_LEVEL="info"`)
	require.NotContains(out, "BLOB_SINK_URL")
}

func TestRenderBlobSink(t *testing.T) {
	type blobTest struct {
		name        string
		blobSinkURL string
		wantFlag    bool
	}

	tests := []blobTest{
		{
			name:        "empty blob sink omits flag and key",
			blobSinkURL: "",
			wantFlag:    false,
		},
		{
			name:        "blob sink adds flag and key",
			blobSinkURL: "https://blobs.example.com",
			wantFlag:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := testutils.SetupTest(t)

			cfg := validConfig()
			cfg.BlobSinkURL = tt.blobSinkURL

			env, err := RenderEnv(cfg)
			require.NoError(err)
			compose, err := RenderCompose(cfg)
			require.NoError(err)

			if tt.wantFlag {
				require.Contains(string(env), `BLOB_SINK_URL="https://blobs.example.com"`)
				require.Contains(string(compose), "--sequencer.blobSinkUrl ${BLOB_SINK_URL}")
				require.Contains(string(compose), "- BLOB_SINK_URL=${BLOB_SINK_URL}")
			} else {
				require.NotContains(string(env), "BLOB_SINK_URL")
				require.NotContains(string(compose), "blobSinkUrl")
				require.NotContains(string(compose), "BLOB_SINK_URL")
			}
		})
	}
}

func TestRenderComposeFixedService(t *testing.T) {
	require := testutils.SetupTest(t)

	compose, err := RenderCompose(validConfig())
	require.NoError(err)

	out := string(compose)
	require.Contains(out, "image: "+constants.SequencerImage)
	require.Contains(out, "container_name: "+constants.SequencerContainerName)
	require.Contains(out, "network_mode: host")
	require.Contains(out, "- ./data:/data")
	require.Contains(out, "node start --network alpha-testnet --node --archiver --sequencer")
}

func TestWriteArtifactsRejectsBeforeWriting(t *testing.T) {
	require := testutils.SetupTest(t)

	dir := t.TempDir()
	cfg := validConfig()
	cfg.EthereumHosts = "eth.example.com:8545" // missing scheme

	err := WriteArtifacts(cfg, dir)
	require.ErrorIs(err, constants.ErrValidation)

	entries, readErr := os.ReadDir(dir)
	require.NoError(readErr)
	require.Empty(entries)
}

func TestWriteArtifactsOverwrites(t *testing.T) {
	require := testutils.SetupTest(t)

	dir := t.TempDir()
	envPath := filepath.Join(dir, constants.EnvFileName)
	composePath := filepath.Join(dir, constants.ComposeFileName)

	// simulate a prior run with manual edits
	require.NoError(os.WriteFile(envPath, []byte("MANUAL_EDIT=1\n"), 0o600))

	cfg := validConfig()
	require.NoError(WriteArtifacts(cfg, dir))

	env, err := os.ReadFile(envPath)
	require.NoError(err)
	require.False(strings.Contains(string(env), "MANUAL_EDIT"))

	compose, err := os.ReadFile(composePath)
	require.NoError(err)
	require.Contains(string(compose), "image: "+constants.SequencerImage)

	info, err := os.Stat(filepath.Join(dir, constants.DataDirName))
	require.NoError(err)
	require.True(info.IsDir())

	// second run is byte-identical
	require.NoError(WriteArtifacts(cfg, dir))
	env2, err := os.ReadFile(envPath)
	require.NoError(err)
	require.Equal(env, env2)
}
