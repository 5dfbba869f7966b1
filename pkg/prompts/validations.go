// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"strings"
)

// ValidateURLFormat accepts any value carrying an explicit http or https
// scheme prefix. Deliberately a prefix match, not a full URL grammar:
// RPC endpoints are passed through verbatim to the node.
func ValidateURLFormat(input string) error {
	if input == "" {
		return errors.New("URL cannot be empty")
	}
	if !strings.HasPrefix(input, "http://") && !strings.HasPrefix(input, "https://") {
		return errors.New("URL must start with http:// or https://")
	}
	return nil
}

// ValidateNonEmpty rejects empty input.
func ValidateNonEmpty(input string) error {
	if input == "" {
		return errors.New("value cannot be empty")
	}
	return nil
}
