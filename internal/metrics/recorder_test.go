// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arah91-bit/my-epg-automation/internal/metrics"
)

func TestRecorder_Counters(t *testing.T) {
	r := metrics.NewRecorder()

	r.Probe(true)
	r.Probe(true)
	r.Probe(false)
	r.Download(metrics.KindSource, true)
	r.Download(metrics.KindReference, false)
	r.Corrections("callsign", 2)
	r.Corrections("fuzzy", 5)
	r.Skipped(3)

	expected := `
# HELP epgclean_probes_total Stream liveness probes, by outcome (up/down).
# TYPE epgclean_probes_total counter
epgclean_probes_total{outcome="down"} 1
epgclean_probes_total{outcome="up"} 2
# HELP epgclean_corrections_total Rewritten tvg-ids, by match method (callsign/fuzzy).
# TYPE epgclean_corrections_total counter
epgclean_corrections_total{method="callsign"} 2
epgclean_corrections_total{method="fuzzy"} 5
# HELP epgclean_candidates_skipped_total Live channels skipped because their name normalizes to nothing.
# TYPE epgclean_candidates_skipped_total counter
epgclean_candidates_skipped_total 3
`
	err := testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected),
		"epgclean_probes_total", "epgclean_corrections_total", "epgclean_candidates_skipped_total")
	require.NoError(t, err)

	assert.Equal(t, 2, testutil.CollectAndCount(r.Registry(), "epgclean_downloads_total"))
}

func TestRecorder_Gauges(t *testing.T) {
	r := metrics.NewRecorder()
	r.LiveChannels(42)
	r.ReferenceChannels(1000)
	r.RelevancySites(3, 7)
	r.Finish(1500*time.Millisecond, time.Unix(1700000000, 0))

	expected := `
# HELP epgclean_live_channels Channels that passed the liveness probe in the last run.
# TYPE epgclean_live_channels gauge
epgclean_live_channels 42
# HELP epgclean_reference_channels Reference channels available for matching in the last run.
# TYPE epgclean_reference_channels gauge
epgclean_reference_channels 1000
# HELP epgclean_run_duration_seconds Wall time of the last run.
# TYPE epgclean_run_duration_seconds gauge
epgclean_run_duration_seconds 1.5
# HELP epgclean_last_run_timestamp_seconds Unix time the last run finished.
# TYPE epgclean_last_run_timestamp_seconds gauge
epgclean_last_run_timestamp_seconds 1.7e+09
# HELP epgclean_relevancy_sites EPG sites analyzed in the last relevancy run, by state (matched/unmatched).
# TYPE epgclean_relevancy_sites gauge
epgclean_relevancy_sites{state="matched"} 3
epgclean_relevancy_sites{state="unmatched"} 7
`
	require.NoError(t, testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected),
		"epgclean_live_channels", "epgclean_reference_channels", "epgclean_run_duration_seconds",
		"epgclean_last_run_timestamp_seconds", "epgclean_relevancy_sites"))
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := metrics.NewRecorder()
	r.LiveChannels(7)

	path := filepath.Join(t.TempDir(), "epgclean.prom")
	require.NoError(t, r.WriteTextfile(path))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "epgclean_live_channels 7")
}

func TestRecorder_WriteTextfileMissingDir(t *testing.T) {
	r := metrics.NewRecorder()
	err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "epgclean.prom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write metrics textfile")
}

func TestRecorder_IsolatedRegistries(t *testing.T) {
	a, b := metrics.NewRecorder(), metrics.NewRecorder()
	a.Probe(true)
	assert.Equal(t, 1, testutil.CollectAndCount(a.Registry(), "epgclean_probes_total"))
	assert.Equal(t, 0, testutil.CollectAndCount(b.Registry(), "epgclean_probes_total"))
}

func TestRecorder_DownloadLabels(t *testing.T) {
	r := metrics.NewRecorder()
	r.Download(metrics.KindSource, true)
	r.Download(metrics.KindSource, true)
	r.Download(metrics.KindReference, false)

	families, err := r.Registry().Gather()
	require.NoError(t, err)

	var downloads *dto.MetricFamily
	for _, mf := range families {
		if mf.GetName() == "epgclean_downloads_total" {
			downloads = mf
		}
	}
	require.NotNil(t, downloads)
	assert.Equal(t, dto.MetricType_COUNTER, downloads.GetType())

	got := map[string]float64{}
	for _, m := range downloads.GetMetric() {
		labels := map[string]string{}
		for _, lp := range m.GetLabel() {
			labels[lp.GetName()] = lp.GetValue()
		}
		got[labels["kind"]+"/"+labels["outcome"]] = m.GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{
		metrics.KindSource + "/" + metrics.OutcomeSuccess:    2,
		metrics.KindReference + "/" + metrics.OutcomeFailure: 1,
	}, got)
}
