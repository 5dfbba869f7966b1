// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

/*
Package prompts provides user interaction primitives following UNIX conventions.

If stdin is a TTY, prompting is allowed; if stdin is not a TTY (piped or
scripted), prompting is never attempted and the fail-fast prompter is used
instead. Explicit overrides (STRATA_NON_INTERACTIVE, CI) force
non-interactive mode.
*/
package prompts
