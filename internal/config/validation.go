// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package config

import (
	"fmt"
	"strings"

	"github.com/arah91-bit/my-epg-automation/internal/validate"
)

// Validate checks an AppConfig and reports every problem at once.
func Validate(cfg AppConfig) error {
	v := validate.New()

	if strings.TrimSpace(cfg.SourceList) == "" && len(cfg.Sources) == 0 {
		v.AddError("SourceList", "either source_list or sources must be set", cfg.SourceList)
	}
	for i, src := range cfg.Sources {
		v.Location(fmt.Sprintf("Sources[%d]", i), src)
	}
	v.FilePath("Output", cfg.Output)
	v.Range("MatchThreshold", cfg.MatchThreshold, 0, 100)

	if len(cfg.ReferenceURLs) == 0 {
		v.AddError("ReferenceURLs", "at least one reference playlist is required", nil)
	}
	for i, u := range cfg.ReferenceURLs {
		v.URL(fmt.Sprintf("ReferenceURLs[%d]", i), u, []string{"http", "https"})
	}

	v.NotEmpty("Probe.Bin", cfg.Probe.Bin)
	v.PositiveDuration("Probe.Timeout", cfg.Probe.Timeout)
	v.Range("Probe.Workers", cfg.Probe.Workers, 1, 256)
	v.NonNegativeFloat("Probe.Rate", cfg.Probe.Rate)

	v.Range("Download.Workers", cfg.Download.Workers, 1, 64)
	v.PositiveDuration("Download.Timeout", cfg.Download.Timeout)
	v.Range("Download.Retries", cfg.Download.Retries, 0, 10)

	v.FilePath("Relevancy.Playlist", cfg.Relevancy.Playlist)
	v.FilePath("Relevancy.SitesFile", cfg.Relevancy.SitesFile)
	v.NotEmpty("Relevancy.SitesDir", cfg.Relevancy.SitesDir)
	v.Range("Relevancy.Workers", cfg.Relevancy.Workers, 1, 256)
	v.NonNegative("Relevancy.MinMatches", cfg.Relevancy.MinMatches)

	if _, err := validate.ParseLogLevel(cfg.Log.Level); err != nil {
		v.AddError("Log.Level", fmt.Sprintf("must be one of %v", validate.LogLevels), cfg.Log.Level)
	}
	v.OneOf("Log.Format", cfg.Log.Format, []string{"json", "console", "auto"})

	return v.Err()
}
