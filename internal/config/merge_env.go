// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package config

import (
	"os"
	"time"
)

// mergeEnvConfig applies EPGCLEAN_* overrides on top of cfg.
func (l *Loader) mergeEnvConfig(cfg *AppConfig) {
	cfg.SourceList = l.envString(EnvSourceList, cfg.SourceList)
	cfg.Sources = l.envList(EnvSources, cfg.Sources)
	cfg.Output = l.envString(EnvOutput, cfg.Output)
	cfg.MatchThreshold = l.envInt(EnvMatchThreshold, cfg.MatchThreshold)

	cfg.Probe.Bin = l.envString(EnvFFprobeBin, cfg.Probe.Bin)
	cfg.Probe.FFmpegBin = l.envString(EnvFFmpegBin, cfg.Probe.FFmpegBin)
	cfg.Probe.Timeout = l.envDuration(EnvProbeTimeout, cfg.Probe.Timeout)
	cfg.Probe.Workers = l.envInt(EnvProbeWorkers, cfg.Probe.Workers)
	cfg.Probe.Rate = l.envFloat(EnvProbeRate, cfg.Probe.Rate)

	cfg.Download.Workers = l.envInt(EnvDownloadWorkers, cfg.Download.Workers)
	cfg.Download.Timeout = l.envDuration(EnvDownloadTimeout, cfg.Download.Timeout)
	cfg.Download.Retries = l.envInt(EnvDownloadRetries, cfg.Download.Retries)

	cfg.Relevancy.Playlist = l.envString(EnvRelevancyPlaylist, cfg.Relevancy.Playlist)
	cfg.Relevancy.SitesFile = l.envString(EnvSitesFile, cfg.Relevancy.SitesFile)
	cfg.Relevancy.SitesDir = l.envString(EnvSitesDir, cfg.Relevancy.SitesDir)
	cfg.Relevancy.Workers = l.envInt(EnvRelevancyWorkers, cfg.Relevancy.Workers)
	cfg.Relevancy.MinMatches = l.envInt(EnvMinMatches, cfg.Relevancy.MinMatches)

	if _, ok := l.envLookup(EnvLogLevel); ok {
		cfg.Log.Level = l.envString(EnvLogLevel, cfg.Log.Level)
	} else {
		cfg.Log.Level = l.envString(EnvLogLevelFallback, cfg.Log.Level)
	}
	cfg.Log.Format = l.envString(EnvLogFormat, cfg.Log.Format)
	cfg.Log.File = l.envString(EnvLogFile, cfg.Log.File)

	cfg.MetricsFile = l.envString(EnvMetricsFile, cfg.MetricsFile)
}

// Wrapper methods record every key the loader consumed.

func (l *Loader) envString(key, defaultVal string) string {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseString(key, defaultVal)
}

func (l *Loader) envList(key string, defaultVal []string) []string {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseList(key, defaultVal)
}

func (l *Loader) envInt(key string, defaultVal int) int {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseInt(key, defaultVal)
}

func (l *Loader) envDuration(key string, defaultVal time.Duration) time.Duration {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseDuration(key, defaultVal)
}

func (l *Loader) envFloat(key string, defaultVal float64) float64 {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseFloat(key, defaultVal)
}

func (l *Loader) envLookup(key string) (string, bool) {
	l.ConsumedEnvKeys[key] = struct{}{}
	return os.LookupEnv(key)
}
