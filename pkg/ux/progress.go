// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// ProgressTracker handles step-by-step progress reporting for the
// provisioning flow. Falls back to plain line output off-TTY.
type ProgressTracker struct {
	writer         io.Writer
	isTTY          bool
	spinnerChars   []string
	spinnerIndex   int
	lastLineLength int
	startTime      time.Time
	mu             sync.Mutex
}

// NewProgressTracker creates a new progress tracker
func NewProgressTracker(writer io.Writer) *ProgressTracker {
	return &ProgressTracker{
		writer:       writer,
		isTTY:        isTerminal(writer),
		spinnerChars: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		startTime:    time.Now(),
	}
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// StartStep begins a new step
func (pt *ProgressTracker) StartStep(stepName string) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if pt.isTTY {
		pt.clearLine()
		fmt.Fprintf(pt.writer, "%s %s...", pt.getSpinner(), stepName)
		pt.lastLineLength = len(stepName) + 5 // spinner + "..."
	} else {
		fmt.Fprintf(pt.writer, "%s...\n", stepName)
	}
}

// CompleteStep marks a step as completed
func (pt *ProgressTracker) CompleteStep(stepName string) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if pt.isTTY {
		pt.clearLine()
	}
	fmt.Fprintf(pt.writer, "✓ %s (%.1fs)\n", stepName, time.Since(pt.startTime).Seconds())
	pt.startTime = time.Now()
}

// FailStep marks a step as failed
func (pt *ProgressTracker) FailStep(stepName string, err error) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if pt.isTTY {
		pt.clearLine()
	}
	fmt.Fprintf(pt.writer, "✗ %s: %v\n", stepName, err)
}

// CreateProgressBar creates a progress bar for a bounded wait, such as
// polling for the container to come up. Returns nil off-TTY.
func (pt *ProgressTracker) CreateProgressBar(task string, total int) *progressbar.ProgressBar {
	if !pt.isTTY {
		return nil
	}

	return progressbar.NewOptions(
		total,
		progressbar.OptionSetWriter(pt.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(fmt.Sprintf("[[cyan]]%s[[reset]]", task)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func (pt *ProgressTracker) getSpinner() string {
	char := pt.spinnerChars[pt.spinnerIndex]
	pt.spinnerIndex = (pt.spinnerIndex + 1) % len(pt.spinnerChars)
	return char
}

func (pt *ProgressTracker) clearLine() {
	if pt.lastLineLength > 0 {
		fmt.Fprint(pt.writer, "\r")
		fmt.Fprint(pt.writer, strings.Repeat(" ", pt.lastLineLength))
		fmt.Fprint(pt.writer, "\r")
		pt.lastLineLength = 0
	}
}
