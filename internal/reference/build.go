// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package reference

import (
	"context"

	"github.com/dustin/go-humanize"

	"github.com/arah91-bit/my-epg-automation/internal/fetch"
	xglog "github.com/arah91-bit/my-epg-automation/internal/log"
	"github.com/arah91-bit/my-epg-automation/internal/playlist"
)

// Downloader fetches the text of a playlist.
type Downloader interface {
	FetchText(ctx context.Context, src string) (string, error)
}

// SourceResult describes what one reference URL contributed to the pool.
type SourceResult struct {
	URL      string
	Channels int
	Bytes    int
	Err      error
}

// Build downloads every reference URL concurrently and builds the pool. A failed
// download only drops that source's channels. Records are concatenated in the order of
// urls, not in download completion order, so the pool is identical across runs.
func Build(ctx context.Context, urls []string, dl Downloader, opts fetch.Options) (*Pool, []SourceResult) {
	logger := xglog.WithComponentFromContext(ctx, "reference")

	results := fetch.Map(ctx, opts, urls, dl.FetchText)

	sources := make([]SourceResult, len(urls))
	var records []*playlist.Record
	for i, res := range results {
		src := SourceResult{URL: urls[i], Err: res.Err}
		var parsed []*playlist.Record
		if src.Err == nil {
			parsed, src.Err = playlist.Parse(res.Value)
		}
		if src.Err == nil {
			src.Channels = len(parsed)
			src.Bytes = len(res.Value)
			records = append(records, parsed...)
			logger.Info().
				Str(xglog.FieldEvent, "reference.downloaded").
				Str(xglog.FieldURL, src.URL).
				Int("channels", src.Channels).
				Str("size", humanize.Bytes(uint64(src.Bytes))).
				Msg("downloaded reference playlist")
		} else {
			logger.Warn().
				Err(src.Err).
				Str(xglog.FieldEvent, "reference.failed").
				Str(xglog.FieldURL, src.URL).
				Msg("failed to download reference playlist")
		}
		sources[i] = src
	}

	pool := NewPool(records)
	logger.Info().
		Str(xglog.FieldEvent, "reference.built").
		Int("channels", pool.Len()).
		Int("call_signs", pool.CallSigns()).
		Int("failed_downloads", fetch.Failed(results)).
		Int("failed_sources", failedSources(sources)).
		Msg("reference pool built")

	return pool, sources
}

func failedSources(sources []SourceResult) int {
	n := 0
	for _, src := range sources {
		if src.Err != nil {
			n++
		}
	}
	return n
}
