// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// mergeFileConfig copies every key present in the file over the defaults.
func mergeFileConfig(dst *AppConfig, src *FileConfig) error {
	setString(&dst.SourceList, src.SourceList)
	if len(src.Sources) > 0 {
		dst.Sources = slices.Clone(src.Sources)
	}
	setString(&dst.Output, src.Output)
	setPtr(&dst.MatchThreshold, src.MatchThreshold)

	setString(&dst.Probe.Bin, src.Probe.Bin)
	setString(&dst.Probe.FFmpegBin, src.Probe.FFmpegBin)
	if err := setDuration(&dst.Probe.Timeout, "probe.timeout", src.Probe.Timeout); err != nil {
		return err
	}
	setPtr(&dst.Probe.Workers, src.Probe.Workers)
	setPtr(&dst.Probe.Rate, src.Probe.Rate)

	setPtr(&dst.Download.Workers, src.Download.Workers)
	if err := setDuration(&dst.Download.Timeout, "download.timeout", src.Download.Timeout); err != nil {
		return err
	}
	setPtr(&dst.Download.Retries, src.Download.Retries)

	setString(&dst.Relevancy.Playlist, src.Relevancy.Playlist)
	setString(&dst.Relevancy.SitesFile, src.Relevancy.SitesFile)
	setString(&dst.Relevancy.SitesDir, src.Relevancy.SitesDir)
	setPtr(&dst.Relevancy.Workers, src.Relevancy.Workers)
	setPtr(&dst.Relevancy.MinMatches, src.Relevancy.MinMatches)

	setString(&dst.Log.Level, src.Log.Level)
	setString(&dst.Log.Format, src.Log.Format)
	setString(&dst.Log.File, src.Log.File)

	setString(&dst.MetricsFile, src.MetricsFile)
	return nil
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func setPtr[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, key, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("%s: %w %q: %v", key, ErrInvalidDuration, raw, err)
	}
	*dst = d
	return nil
}
