// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/arah91-bit/my-epg-automation/internal/config"
	"github.com/arah91-bit/my-epg-automation/internal/fetch"
	xglog "github.com/arah91-bit/my-epg-automation/internal/log"
	"github.com/arah91-bit/my-epg-automation/internal/match"
	"github.com/arah91-bit/my-epg-automation/internal/metrics"
	"github.com/arah91-bit/my-epg-automation/internal/playlist"
	"github.com/arah91-bit/my-epg-automation/internal/reference"
)

// Clean runs the full pipeline: download sources, probe every channel, keep the live
// ones, correct their tvg-ids against the reference pool and write the result.
//
// The output is written only after correction and only when the run was not
// interrupted. ErrNoLiveChannels is returned, and nothing is written, when no channel
// answers.
func Clean(ctx context.Context, cfg config.AppConfig, deps Deps, opts Options) (*CleanStats, error) {
	if deps.Downloader == nil || deps.Prober == nil {
		return nil, errors.New("jobs: Downloader and Prober are required")
	}
	deps = deps.withDefaults()

	stats := &CleanStats{
		RunID:     uuid.NewString(),
		Output:    cfg.Output,
		StartTime: deps.Clock(),
	}
	ctx = xglog.ContextWithRun(ctx, stats.RunID, "clean")
	logger := xglog.WithComponentFromContext(ctx, "jobs")

	logger.Info().
		Str(xglog.FieldEvent, "clean.start").
		Str(xglog.FieldPath, cfg.Output).
		Bool("dry_run", opts.DryRun).
		Msg("starting clean run")

	sources, err := resolveSources(deps.Fs, cfg, logger)
	if err != nil {
		return nil, err
	}
	stats.Sources = len(sources)

	if !opts.DryRun {
		lock, err := lockOutput(cfg.Output)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				logger.Warn().Err(err).Msg("release output lock")
			}
		}()
	}

	downloadOpts := fetch.Options{Workers: cfg.Download.Workers, Timeout: cfg.Download.Timeout}

	// Stage 1: candidates
	candidates, failures := downloadSources(ctx, sources, deps, downloadOpts)
	stats.SourceFailures = failures
	if err := ctx.Err(); err != nil {
		return stats, fmt.Errorf("download sources: %w", err)
	}
	if failures == len(sources) {
		return stats, fmt.Errorf("%w (%d tried)", ErrSourcesUnavailable, len(sources))
	}
	stats.Parsed = len(candidates)

	// Stage 2: liveness
	live := probeChannels(ctx, candidates, deps, fetch.Options{
		Workers:       cfg.Probe.Workers,
		Timeout:       cfg.Probe.Timeout,
		RatePerSecond: cfg.Probe.Rate,
	})
	if err := ctx.Err(); err != nil {
		return stats, fmt.Errorf("probe streams: %w", err)
	}
	stats.Live = len(live)
	deps.Metrics.LiveChannels(len(live))
	logger.Info().
		Str(xglog.FieldEvent, "probe.done").
		Int("live", len(live)).
		Int("total", len(candidates)).
		Msgf("found %d working streams out of %d", len(live), len(candidates))
	if len(live) == 0 {
		return stats, ErrNoLiveChannels
	}

	// Stage 3: reference pool
	pool, refSources := reference.Build(ctx, cfg.ReferenceURLs, deps.Downloader, downloadOpts)
	if err := ctx.Err(); err != nil {
		return stats, fmt.Errorf("download reference playlists: %w", err)
	}
	stats.ReferenceSources = refSources
	stats.ReferenceChannels = pool.Len()
	for _, src := range refSources {
		deps.Metrics.Download(metrics.KindReference, src.Err == nil)
	}
	deps.Metrics.ReferenceChannels(pool.Len())
	if pool.Len() == 0 {
		logger.Warn().
			Str(xglog.FieldEvent, "reference.empty").
			Msg("no reference channels available, tvg-ids will not be corrected")
	}

	// Stage 4: correction
	corrector := match.New(cfg.MatchThreshold, xglog.WithComponentFromContext(ctx, "match"))
	res := corrector.Correct(live, pool)
	stats.Corrected = res.Corrected
	stats.ByCallSign = res.ByCallSign
	stats.ByFuzzy = res.ByFuzzy
	stats.Skipped = res.Skipped
	stats.Unmatched = res.Unmatched
	deps.Metrics.Corrections(string(match.MethodCallSign), res.ByCallSign)
	deps.Metrics.Corrections(string(match.MethodFuzzy), res.ByFuzzy)
	deps.Metrics.Skipped(res.Skipped)
	logger.Info().
		Str(xglog.FieldEvent, "match.done").
		Int("threshold", corrector.Threshold()).
		Int("corrected", res.Corrected).
		Int("by_callsign", res.ByCallSign).
		Int("by_fuzzy", res.ByFuzzy).
		Int("skipped", res.Skipped).
		Int("unmatched", res.Unmatched).
		Msgf("corrected %d tvg-ids", res.Corrected)

	if err := ctx.Err(); err != nil {
		return stats, fmt.Errorf("clean run interrupted: %w", err)
	}

	// Stage 5: output
	if opts.DryRun {
		logger.Info().
			Str(xglog.FieldEvent, "playlist.dry_run").
			Int("channels", len(live)).
			Msg("dry run, playlist not written")
	} else {
		n, err := writePlaylist(ctx, cfg.Output, live)
		if err != nil {
			return stats, fmt.Errorf("write playlist: %w", err)
		}
		stats.Written = true
		stats.Bytes = n
		logger.Info().
			Str(xglog.FieldEvent, "playlist.write").
			Str(xglog.FieldPath, cfg.Output).
			Int("channels", len(live)).
			Str("size", humanize.Bytes(uint64(n))).
			Msg("playlist written")
	}

	stats.Duration = deps.Clock().Sub(stats.StartTime)
	finishMetrics(ctx, cfg, deps, stats.Duration)

	logger.Info().
		Str(xglog.FieldEvent, "clean.done").
		Dur("duration", stats.Duration).
		Msg("clean run complete")
	return stats, nil
}

// downloadSources fetches every source concurrently and parses the successful ones in
// source order. It returns the candidates and the number of failed sources.
func downloadSources(ctx context.Context, sources []string, deps Deps, opts fetch.Options) ([]*playlist.Record, int) {
	logger := xglog.WithComponentFromContext(ctx, "jobs")

	results := fetch.Map(ctx, opts, sources, deps.Downloader.FetchText)

	var (
		candidates []*playlist.Record
		failures   int
	)
	for i, res := range results {
		err := res.Err
		var parsed []*playlist.Record
		if err == nil {
			parsed, err = playlist.Parse(res.Value)
		}
		deps.Metrics.Download(metrics.KindSource, err == nil)
		if err != nil {
			failures++
			logger.Warn().
				Err(err).
				Str(xglog.FieldEvent, "source.failed").
				Str(xglog.FieldSource, sources[i]).
				Msg("could not read source playlist")
			continue
		}
		candidates = append(candidates, parsed...)
		logger.Info().
			Str(xglog.FieldEvent, "source.downloaded").
			Str(xglog.FieldSource, sources[i]).
			Int("channels", len(parsed)).
			Str("size", humanize.Bytes(uint64(len(res.Value)))).
			Msg("downloaded source playlist")
	}
	return candidates, failures
}

// probeChannels checks every candidate and returns the live ones in input order.
func probeChannels(ctx context.Context, candidates []*playlist.Record, deps Deps, opts fetch.Options) []*playlist.Record {
	logger := xglog.WithComponentFromContext(ctx, "probe")
	total := len(candidates)
	logger.Info().
		Str(xglog.FieldEvent, "probe.start").
		Int("total", total).
		Int("workers", opts.Workers).
		Msgf("checking %d streams with %d workers", total, opts.Workers)

	var done atomic.Int64
	results := fetch.Map(ctx, opts, candidates, func(ctx context.Context, rec *playlist.Record) (*playlist.Record, error) {
		err := deps.Prober.Probe(ctx, rec.URL())
		n := done.Add(1)

		state := "UP"
		if err != nil {
			state = "DOWN"
		}
		logger.Info().
			Str(xglog.FieldEvent, "probe.result").
			Str(xglog.FieldChannel, rec.SafeName()).
			Bool("up", err == nil).
			Msgf("(%d/%d) %s %s", n, total, state, rec.SafeName())
		if err != nil {
			logger.Debug().Err(err).Str(xglog.FieldURL, rec.URL()).Msg("probe failed")
		}
		return rec, err
	})

	for _, res := range results {
		deps.Metrics.Probe(res.OK())
	}
	return fetch.Values(results)
}

func finishMetrics(ctx context.Context, cfg config.AppConfig, deps Deps, elapsed time.Duration) {
	deps.Metrics.Finish(elapsed, deps.Clock())
	if cfg.MetricsFile == "" {
		return
	}
	if err := deps.Metrics.WriteTextfile(cfg.MetricsFile); err != nil {
		logger := xglog.WithComponentFromContext(ctx, "jobs")
		logger.Warn().
			Err(err).
			Str(xglog.FieldPath, cfg.MetricsFile).
			Msg("could not write metrics textfile")
	}
}
