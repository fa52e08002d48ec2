// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package config

import "time"

// AppConfig is the effective configuration of a run. It is passed by value.
type AppConfig struct {
	// SourceList is a text file of playlist locations, one per line.
	SourceList string
	// Sources are playlist locations used in addition to SourceList.
	Sources []string
	// Output is the cleaned playlist path.
	Output string
	// MatchThreshold is the minimum fuzzy score (0-100) accepted for a correction.
	MatchThreshold int
	// ReferenceURLs are the authoritative playlists. Not configurable.
	ReferenceURLs []string

	Probe     ProbeConfig
	Download  DownloadConfig
	Relevancy RelevancyConfig
	Log       LogConfig

	// MetricsFile, when set, receives a Prometheus textfile after each run.
	MetricsFile string

	Version string
}

// ProbeConfig controls stream liveness probing.
type ProbeConfig struct {
	Bin       string
	FFmpegBin string
	Timeout   time.Duration
	Workers   int
	Rate      float64 // probe starts per second, 0 = unlimited
}

// DownloadConfig controls playlist downloads.
type DownloadConfig struct {
	Workers int
	Timeout time.Duration
	Retries int
}

// RelevancyConfig controls the EPG site relevancy analysis.
type RelevancyConfig struct {
	Playlist   string
	SitesFile  string
	SitesDir   string
	Workers    int
	MinMatches int
}

// LogConfig controls logging output.
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// FileConfig is the on-disk representation. Optional scalars are pointers so an explicit
// zero can be told apart from an absent key.
type FileConfig struct {
	SourceList     string   `yaml:"source_list,omitempty" toml:"source_list,omitempty"`
	Sources        []string `yaml:"sources,omitempty" toml:"sources,omitempty"`
	Output         string   `yaml:"output,omitempty" toml:"output,omitempty"`
	MatchThreshold *int     `yaml:"match_threshold,omitempty" toml:"match_threshold,omitempty"`

	Probe     ProbeFileConfig     `yaml:"probe,omitempty" toml:"probe,omitempty"`
	Download  DownloadFileConfig  `yaml:"download,omitempty" toml:"download,omitempty"`
	Relevancy RelevancyFileConfig `yaml:"relevancy,omitempty" toml:"relevancy,omitempty"`
	Log       LogFileConfig       `yaml:"log,omitempty" toml:"log,omitempty"`

	MetricsFile string `yaml:"metrics_file,omitempty" toml:"metrics_file,omitempty"`
}

// ProbeFileConfig is the file form of ProbeConfig. Durations use Go syntax ("15s").
type ProbeFileConfig struct {
	Bin       string   `yaml:"bin,omitempty" toml:"bin,omitempty"`
	FFmpegBin string   `yaml:"ffmpeg_bin,omitempty" toml:"ffmpeg_bin,omitempty"`
	Timeout   string   `yaml:"timeout,omitempty" toml:"timeout,omitempty"`
	Workers   *int     `yaml:"workers,omitempty" toml:"workers,omitempty"`
	Rate      *float64 `yaml:"rate,omitempty" toml:"rate,omitempty"`
}

// DownloadFileConfig is the file form of DownloadConfig.
type DownloadFileConfig struct {
	Workers *int   `yaml:"workers,omitempty" toml:"workers,omitempty"`
	Timeout string `yaml:"timeout,omitempty" toml:"timeout,omitempty"`
	Retries *int   `yaml:"retries,omitempty" toml:"retries,omitempty"`
}

// RelevancyFileConfig is the file form of RelevancyConfig.
type RelevancyFileConfig struct {
	Playlist   string `yaml:"playlist,omitempty" toml:"playlist,omitempty"`
	SitesFile  string `yaml:"sites_file,omitempty" toml:"sites_file,omitempty"`
	SitesDir   string `yaml:"sites_dir,omitempty" toml:"sites_dir,omitempty"`
	Workers    *int   `yaml:"workers,omitempty" toml:"workers,omitempty"`
	MinMatches *int   `yaml:"min_matches,omitempty" toml:"min_matches,omitempty"`
}

// LogFileConfig is the file form of LogConfig.
type LogFileConfig struct {
	Level  string `yaml:"level,omitempty" toml:"level,omitempty"`
	Format string `yaml:"format,omitempty" toml:"format,omitempty"`
	File   string `yaml:"file,omitempty" toml:"file,omitempty"`
}
