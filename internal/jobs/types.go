// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package jobs

import (
	"time"

	"github.com/spf13/afero"

	"github.com/arah91-bit/my-epg-automation/internal/probe"
	"github.com/arah91-bit/my-epg-automation/internal/reference"
	"github.com/arah91-bit/my-epg-automation/internal/relevancy"
)

// MetricsRecorder defines the interface for recording run metrics
type MetricsRecorder interface {
	Probe(up bool)
	Download(kind string, ok bool)
	Corrections(method string, n int)
	Skipped(n int)
	LiveChannels(n int)
	ReferenceChannels(n int)
	RelevancySites(matched, unmatched int)
	Finish(elapsed time.Duration, now time.Time)
	WriteTextfile(path string) error
}

// Deps holds the collaborators of a run. Zero fields get defaults, except Downloader
// and Prober which Clean requires.
type Deps struct {
	Downloader reference.Downloader
	Prober     probe.Prober
	Metrics    MetricsRecorder
	// Fs is used for the source list and the relevancy inputs. Defaults to the OS.
	Fs    afero.Fs
	Clock func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Fs == nil {
		d.Fs = afero.NewOsFs()
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	if d.Metrics == nil {
		d.Metrics = nopMetrics{}
	}
	return d
}

// Options controls the behavior of a clean run
type Options struct {
	DryRun bool // Skip writing the output playlist
}

// CleanStats contains statistics about a clean run
type CleanStats struct {
	RunID string

	Sources        int
	SourceFailures int
	Parsed         int
	Live           int

	ReferenceSources  []reference.SourceResult
	ReferenceChannels int

	Corrected  int
	ByCallSign int
	ByFuzzy    int
	Skipped    int
	Unmatched  int

	Output  string
	Written bool
	Bytes   int

	StartTime time.Time
	Duration  time.Duration
}

// RelevancyStats contains the outcome of a relevancy analysis
type RelevancyStats struct {
	RunID       string
	Playlist    string
	PlaylistIDs int
	Sites       []relevancy.SiteReport
	Recommended []relevancy.SiteReport
	Duration    time.Duration
}

type nopMetrics struct{}

func (nopMetrics) Probe(bool) {}
func (nopMetrics) Download(string, bool) {}
func (nopMetrics) Corrections(string, int) {}
func (nopMetrics) Skipped(int) {}
func (nopMetrics) LiveChannels(int) {}
func (nopMetrics) ReferenceChannels(int) {}
func (nopMetrics) RelevancySites(int, int) {}
func (nopMetrics) Finish(time.Duration, time.Time) {}
func (nopMetrics) WriteTextfile(string) error { return nil }
