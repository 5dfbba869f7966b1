// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateURLFormat(t *testing.T) {
	type urlTest struct {
		name    string
		input   string
		wantErr bool
	}

	tests := []urlTest{
		{
			name:    "https URL",
			input:   "https://rpc.example.com",
			wantErr: false,
		},
		{
			name:    "http URL with port",
			input:   "http://localhost:8545",
			wantErr: false,
		},
		{
			name:    "missing scheme",
			input:   "rpc.example.com",
			wantErr: true,
		},
		{
			name:    "unsupported scheme",
			input:   "ws://rpc.example.com",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "scheme as substring only",
			input:   "foohttp://bar",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			err := ValidateURLFormat(tt.input)
			if tt.wantErr {
				require.Error(err)
			} else {
				require.NoError(err)
			}
		})
	}
}

func TestValidateNonEmpty(t *testing.T) {
	require := require.New(t)
	require.Error(ValidateNonEmpty(""))
	require.NoError(ValidateNonEmpty("0xdeadbeef"))
}
