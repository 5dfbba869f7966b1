// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/stratalabs/sequencer-cli/pkg/constants"
)

// ipLookupClient and ipLookupURL are variables for testing purposes to
// allow mocking the lookup service
var (
	ipLookupClient = &http.Client{
		Timeout: constants.IPLookupTimeout,
	}
	ipLookupURL = constants.IPLookupURL
)

// PublicIP asks an external lookup service for this host's public IP.
func PublicIP() (string, error) {
	resp, err := ipLookupClient.Get(ipLookupURL)
	if err != nil {
		return "", fmt.Errorf("public IP lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("public IP lookup returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read public IP response: %w", err)
	}

	ip := strings.TrimSpace(string(body))
	if ip == "" {
		return "", fmt.Errorf("public IP lookup returned an empty body")
	}
	return ip, nil
}
