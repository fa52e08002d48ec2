// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arah91-bit/my-epg-automation/internal/config"
	"github.com/arah91-bit/my-epg-automation/internal/version"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Check a configuration file without running anything",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := strings.TrimSpace(ctx.configFlag)
			if path == "" {
				return errors.New("--config is required")
			}
			if _, err := config.NewLoader(path, version.Version).Load(); err != nil {
				return fmt.Errorf("configuration error in %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid\n", path)
			return nil
		},
	}
}
