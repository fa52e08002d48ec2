// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/arah91-bit/my-epg-automation/internal/config"
	"github.com/arah91-bit/my-epg-automation/internal/jobs"
)

func newRelevancyCommand(ctx *commandContext) *cobra.Command {
	var playlistPath, sitesFile, sitesDir string

	cmd := &cobra.Command{
		Use:   "relevancy",
		Short: "Rank EPG sites by how many playlist channels they carry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("playlist") {
				cfg.Relevancy.Playlist = playlistPath
			}
			if cmd.Flags().Changed("sites-file") {
				cfg.Relevancy.SitesFile = sitesFile
			}
			if cmd.Flags().Changed("sites-dir") {
				cfg.Relevancy.SitesDir = sitesDir
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			deps, err := ctx.deps(cfg, false)
			if err != nil {
				return err
			}
			stats, err := jobs.Relevancy(cmd.Context(), cfg, deps)
			if err != nil {
				return err
			}
			printRelevancyReport(cmd.OutOrStdout(), stats, cfg.Relevancy.MinMatches)
			return nil
		},
	}

	cmd.Flags().StringVar(&playlistPath, "playlist", "", "Cleaned playlist to analyze (default: the clean output)")
	cmd.Flags().StringVar(&sitesFile, "sites-file", "", "File listing EPG site names, one per line")
	cmd.Flags().StringVar(&sitesDir, "sites-dir", "", "Directory holding <site>/<site>.channels.xml")
	return cmd
}

func printRelevancyReport(w io.Writer, stats *jobs.RelevancyStats, minMatches int) {
	rows := make([][]string, 0, len(stats.Sites))
	for _, rep := range stats.Sites {
		rows = append(rows, []string{rep.Site, strconv.Itoa(rep.Matches), humanize.Comma(int64(rep.Total))})
	}
	fmt.Fprintln(w, report{
		title:   fmt.Sprintf("EPG relevancy for %s (%d channels)", stats.Playlist, stats.PlaylistIDs),
		headers: []string{"Site", "Your Channel Matches", "Total Channels on Site"},
		rows:    rows,
		numeric: []int{1, 2},
	}.render())

	if len(stats.Recommended) == 0 {
		fmt.Fprintf(w, "\nNo site matches at least %d of your %d channels.\n", minMatches, stats.PlaylistIDs)
		return
	}
	fmt.Fprintf(w, "\nRecommended sites (%d or more matches):\n", minMatches)
	for _, rep := range stats.Recommended {
		fmt.Fprintf(w, "  - %s (%d/%d channels)\n", rep.Site, rep.Matches, stats.PlaylistIDs)
	}
}
