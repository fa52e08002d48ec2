// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

//go:build !unix

package procgroup

import "os/exec"

// Set is a no-op where process groups are not available.
func Set(cmd *exec.Cmd) {}

// Kill terminates the direct child only.
func Kill(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
