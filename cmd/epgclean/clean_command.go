// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/arah91-bit/my-epg-automation/internal/config"
	"github.com/arah91-bit/my-epg-automation/internal/jobs"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var (
		output    string
		threshold int
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Probe every stream, repair tvg-ids and write the cleaned playlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = output
			}
			if cmd.Flags().Changed("threshold") {
				cfg.MatchThreshold = threshold
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			deps, err := ctx.deps(cfg, true)
			if err != nil {
				return err
			}

			stats, err := jobs.Clean(cmd.Context(), cfg, deps, jobs.Options{DryRun: dryRun})
			if err != nil {
				return err
			}
			printCleanSummary(cmd.OutOrStdout(), stats)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output playlist path (overrides config)")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "Minimum fuzzy score 0-100 (overrides config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run the pipeline without writing the playlist")
	return cmd
}

func printCleanSummary(w io.Writer, stats *jobs.CleanStats) {
	sources := humanize.Comma(int64(stats.Sources))
	if stats.SourceFailures > 0 {
		sources = fmt.Sprintf("%s (%d failed)", sources, stats.SourceFailures)
	}
	output := "not written (dry run)"
	if stats.Written {
		output = fmt.Sprintf("%s (%s)", stats.Output, humanize.Bytes(uint64(stats.Bytes)))
	}

	rows := [][]string{
		{"Sources", sources},
		{"Channels parsed", humanize.Comma(int64(stats.Parsed))},
		{"Working streams", humanize.Comma(int64(stats.Live))},
		{"Reference channels", humanize.Comma(int64(stats.ReferenceChannels))},
		{"Corrected tvg-ids", fmt.Sprintf("%d (%d call sign, %d fuzzy)", stats.Corrected, stats.ByCallSign, stats.ByFuzzy)},
		{"Unmatched", humanize.Comma(int64(stats.Unmatched))},
		{"Skipped", humanize.Comma(int64(stats.Skipped))},
		{"Output", output},
		{"Elapsed", stats.Duration.Round(time.Millisecond).String()},
	}
	fmt.Fprintln(w, report{
		title:   "Clean run " + stats.RunID,
		headers: []string{"Step", "Result"},
		rows:    rows,
	}.render())
}
