// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

// Package procgroup runs external tools in their own process group so that a canceled
// probe also takes down anything the tool spawned.
package procgroup

import "os/exec"

// Bind puts cmd in a new process group and makes context cancellation kill the whole
// group instead of only the direct child. Call it before cmd.Start.
func Bind(cmd *exec.Cmd) {
	Set(cmd)
	cmd.Cancel = func() error { return Kill(cmd) }
}
