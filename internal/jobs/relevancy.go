// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package jobs

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/arah91-bit/my-epg-automation/internal/config"
	"github.com/arah91-bit/my-epg-automation/internal/fetch"
	xglog "github.com/arah91-bit/my-epg-automation/internal/log"
	"github.com/arah91-bit/my-epg-automation/internal/relevancy"
)

// Relevancy ranks the configured EPG sites by how many tvg-ids of the cleaned playlist
// their channel lists mention. Only Fs, Metrics and Clock of deps are used.
func Relevancy(ctx context.Context, cfg config.AppConfig, deps Deps) (*RelevancyStats, error) {
	deps = deps.withDefaults()
	rc := cfg.Relevancy

	stats := &RelevancyStats{RunID: uuid.NewString(), Playlist: rc.Playlist}
	ctx = xglog.ContextWithRun(ctx, stats.RunID, "relevancy")
	logger := xglog.WithComponentFromContext(ctx, "jobs")
	start := deps.Clock()

	data, err := afero.ReadFile(deps.Fs, rc.Playlist)
	if err != nil {
		return nil, fmt.Errorf("read playlist %s: %w", rc.Playlist, err)
	}
	ids := relevancy.PlaylistIDs(string(data))
	stats.PlaylistIDs = len(ids)
	logger.Info().
		Str(xglog.FieldEvent, "relevancy.playlist").
		Str(xglog.FieldPlaylistPath, rc.Playlist).
		Int("channels", len(ids)).
		Msgf("found %d unique channels in playlist", len(ids))

	sites, err := relevancy.LoadSites(deps.Fs, rc.SitesFile)
	if err != nil {
		return nil, err
	}

	analyzer := relevancy.NewAnalyzer(deps.Fs, rc.SitesDir, fetch.Options{Workers: rc.Workers})
	ranked, err := analyzer.Analyze(ctx, sites, ids)
	if err != nil {
		return nil, err
	}
	stats.Sites = ranked
	stats.Recommended = relevancy.Recommend(ranked, rc.MinMatches)

	matched := 0
	for _, rep := range ranked {
		if rep.Matches > 0 {
			matched++
		}
	}
	deps.Metrics.RelevancySites(matched, len(ranked)-matched)

	stats.Duration = deps.Clock().Sub(start)
	finishMetrics(ctx, cfg, deps, stats.Duration)

	logger.Info().
		Str(xglog.FieldEvent, "relevancy.done").
		Int("sites", len(ranked)).
		Int("recommended", len(stats.Recommended)).
		Dur("duration", stats.Duration).
		Msg("relevancy analysis complete")
	return stats, nil
}
