// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package config

import (
	"slices"
	"time"

	"github.com/arah91-bit/my-epg-automation/internal/reference"
)

const (
	DefaultSourceList     = "m3ulinks.txt"
	DefaultOutput         = "cleaned_playlist.m3u"
	DefaultMatchThreshold = 85

	DefaultProbeTimeout = 15 * time.Second
	DefaultProbeWorkers = 20

	DefaultDownloadWorkers = 4
	DefaultDownloadTimeout = 30 * time.Second
	DefaultDownloadRetries = 2

	DefaultSitesFile           = "epgsites.clean.txt"
	DefaultSitesDir            = "sites"
	DefaultRelevancyWorkers    = 8
	DefaultRelevancyMinMatches = 1

	DefaultLogLevel  = "info"
	DefaultLogFormat = "auto"
)

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	return AppConfig{
		SourceList:     DefaultSourceList,
		Output:         DefaultOutput,
		MatchThreshold: DefaultMatchThreshold,
		ReferenceURLs:  slices.Clone(reference.DefaultURLs),
		Probe: ProbeConfig{
			Timeout: DefaultProbeTimeout,
			Workers: DefaultProbeWorkers,
		},
		Download: DownloadConfig{
			Workers: DefaultDownloadWorkers,
			Timeout: DefaultDownloadTimeout,
			Retries: DefaultDownloadRetries,
		},
		Relevancy: RelevancyConfig{
			SitesFile:  DefaultSitesFile,
			SitesDir:   DefaultSitesDir,
			Workers:    DefaultRelevancyWorkers,
			MinMatches: DefaultRelevancyMinMatches,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
