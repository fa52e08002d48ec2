// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

// Command epgclean removes dead streams from IPTV playlists, repairs their tvg-ids
// against reference playlists and ranks EPG grabber sites for the result.
//
// Usage:
//
//	epgclean [-c config.yaml] clean [--dry-run]
//	epgclean relevancy
//	epgclean validate -c config.yaml
//
// Exit codes:
//   - 0: success
//   - 1: any error (configuration, no working streams, interrupted run)
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand(defaultServices())
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}
