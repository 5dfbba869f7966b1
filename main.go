// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/stratalabs/sequencer-cli/cmd"
)

func main() {
	cmd.Execute()
}
