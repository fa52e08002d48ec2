// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

// Package metrics records per-run Prometheus metrics for epgclean.
//
// A run is a short-lived batch job, so metrics live on a private registry and are
// exported as a node_exporter textfile rather than scraped.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values.
const (
	OutcomeUp      = "up"
	OutcomeDown    = "down"
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"

	KindSource    = "source"
	KindReference = "reference"

	StateMatched   = "matched"
	StateUnmatched = "unmatched"
)

// Recorder holds the metrics of one run.
type Recorder struct {
	registry *prometheus.Registry

	probes        *prometheus.CounterVec
	downloads     *prometheus.CounterVec
	corrections   *prometheus.CounterVec
	skipped       prometheus.Counter
	liveChannels  prometheus.Gauge
	refChannels   prometheus.Gauge
	runDuration   prometheus.Gauge
	lastRun       prometheus.Gauge
	relevancySite *prometheus.GaugeVec
}

// NewRecorder creates a Recorder backed by a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		probes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "epgclean_probes_total",
			Help: "Stream liveness probes, by outcome (up/down).",
		}, []string{"outcome"}),
		downloads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "epgclean_downloads_total",
			Help: "Playlist downloads, by kind (source/reference) and outcome (success/failure).",
		}, []string{"kind", "outcome"}),
		corrections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "epgclean_corrections_total",
			Help: "Rewritten tvg-ids, by match method (callsign/fuzzy).",
		}, []string{"method"}),
		skipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "epgclean_candidates_skipped_total",
			Help: "Live channels skipped because their name normalizes to nothing.",
		}),
		liveChannels: factory.NewGauge(prometheus.GaugeOpts{
			Name: "epgclean_live_channels",
			Help: "Channels that passed the liveness probe in the last run.",
		}),
		refChannels: factory.NewGauge(prometheus.GaugeOpts{
			Name: "epgclean_reference_channels",
			Help: "Reference channels available for matching in the last run.",
		}),
		runDuration: factory.NewGauge(prometheus.GaugeOpts{
			Name: "epgclean_run_duration_seconds",
			Help: "Wall time of the last run.",
		}),
		lastRun: factory.NewGauge(prometheus.GaugeOpts{
			Name: "epgclean_last_run_timestamp_seconds",
			Help: "Unix time the last run finished.",
		}),
		relevancySite: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "epgclean_relevancy_sites",
			Help: "EPG sites analyzed in the last relevancy run, by state (matched/unmatched).",
		}, []string{"state"}),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Probe counts one liveness probe.
func (r *Recorder) Probe(up bool) {
	outcome := OutcomeDown
	if up {
		outcome = OutcomeUp
	}
	r.probes.WithLabelValues(outcome).Inc()
}

// Download counts one playlist download of the given kind.
func (r *Recorder) Download(kind string, ok bool) {
	outcome := OutcomeFailure
	if ok {
		outcome = OutcomeSuccess
	}
	r.downloads.WithLabelValues(kind, outcome).Inc()
}

// Corrections adds rewritten tvg-ids for a match method.
func (r *Recorder) Corrections(method string, n int) {
	r.corrections.WithLabelValues(method).Add(float64(n))
}

// Skipped adds candidates skipped during matching.
func (r *Recorder) Skipped(n int) { r.skipped.Add(float64(n)) }

// LiveChannels sets the number of live channels.
func (r *Recorder) LiveChannels(n int) { r.liveChannels.Set(float64(n)) }

// ReferenceChannels sets the size of the reference pool.
func (r *Recorder) ReferenceChannels(n int) { r.refChannels.Set(float64(n)) }

// RelevancySites sets how many analyzed sites carry at least one playlist id.
func (r *Recorder) RelevancySites(matched, unmatched int) {
	r.relevancySite.WithLabelValues(StateMatched).Set(float64(matched))
	r.relevancySite.WithLabelValues(StateUnmatched).Set(float64(unmatched))
}

// Finish records the run duration and completion time.
func (r *Recorder) Finish(elapsed time.Duration, now time.Time) {
	r.runDuration.Set(elapsed.Seconds())
	r.lastRun.Set(float64(now.Unix()))
}

// WriteTextfile writes the metrics in the text exposition format. The file is replaced
// atomically so a collector never reads a partial file.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
