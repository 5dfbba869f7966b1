// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package dependencies

import (
	"fmt"
	"os/exec"
	"regexp"

	"golang.org/x/mod/semver"

	"github.com/stratalabs/sequencer-cli/pkg/application"
	"github.com/stratalabs/sequencer-cli/pkg/constants"
	"github.com/stratalabs/sequencer-cli/pkg/ux"
)

// lookPath and runCommand are variables for testing purposes to allow
// mocking subprocess execution
var (
	lookPath   = exec.LookPath
	runCommand = func(name string, args ...string) ([]byte, error) {
		cmd := exec.Command(name, args...)
		return cmd.CombinedOutput()
	}
)

var versionPattern = regexp.MustCompile(`\d+\.\d+\.\d+`)

// Tool describes a provisioning requirement: how to detect it, the
// minimum acceptable version, and how to install it.
type Tool struct {
	Name       string
	MinVersion string // dotted triple; empty accepts any version
	// Detect reports whether the tool is present and returns raw output
	// a version can be extracted from.
	Detect  func() (string, bool)
	Install func(app *application.Strata, apt *AptState) error
}

// AptState threads the package-index refresh through the install flow so
// the index is fetched at most once per run, no matter how many
// installers ask for it.
type AptState struct {
	updated bool
}

// Refresh runs apt-get update once; later calls are no-ops.
func (apt *AptState) Refresh() error {
	if apt.updated {
		return nil
	}
	if out, err := runCommand("apt-get", "update"); err != nil {
		return fmt.Errorf("%w: apt-get update: %s", constants.ErrPackageInstall, string(out))
	}
	apt.updated = true
	return nil
}

// AptInstall refreshes the package index if needed and installs pkgs.
func AptInstall(apt *AptState, pkgs ...string) error {
	if err := apt.Refresh(); err != nil {
		return err
	}
	args := append([]string{"install", "-y"}, pkgs...)
	if out, err := runCommand("apt-get", args...); err != nil {
		return fmt.Errorf("%w: apt-get install %v: %s", constants.ErrPackageInstall, pkgs, string(out))
	}
	return nil
}

// Ensure installs tool when it is absent or below its minimum version.
// The re-run of the install procedure for an outdated tool may be a
// fresh install rather than a true upgrade; that matches what the
// underlying installers do.
func Ensure(app *application.Strata, apt *AptState, tool Tool) error {
	out, present := tool.Detect()
	if !present {
		ux.Logger.PrintToUser("%s not found, installing...", tool.Name)
		return tool.Install(app, apt)
	}

	if tool.MinVersion == "" {
		ux.Logger.GreenCheckmarkToUser("%s already installed", tool.Name)
		return nil
	}

	current := ExtractVersion(out)
	if CompareVersions(current, tool.MinVersion) < 0 {
		ux.Logger.PrintToUser("%s %s is below the required %s, installing...", tool.Name, current, tool.MinVersion)
		return tool.Install(app, apt)
	}

	ux.Logger.GreenCheckmarkToUser("%s %s already installed", tool.Name, current)
	return nil
}

// ExtractVersion pulls the first dotted major.minor.patch triple out of
// raw version output. Unparseable output degrades to "0.0.0" so the
// comparison path still runs.
func ExtractVersion(out string) string {
	if v := versionPattern.FindString(out); v != "" {
		return v
	}
	return "0.0.0"
}

// CompareVersions orders two dotted triples by numeric field precedence,
// returning -1, 0 or +1 semver-style.
func CompareVersions(a, b string) int {
	return semver.Compare("v"+a, "v"+b)
}

// BinaryDetect builds a Detect func that looks binary up on PATH and, if
// found, runs it with args to produce version output. A binary that is
// present but fails to print a version still counts as present.
func BinaryDetect(binary string, args ...string) func() (string, bool) {
	return func() (string, bool) {
		path, err := lookPath(binary)
		if err != nil {
			return "", false
		}
		out, err := runCommand(path, args...)
		if err != nil {
			return "", true
		}
		return string(out), true
	}
}
