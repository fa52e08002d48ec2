// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

// Package httpx provides the HTTP client and playlist downloader shared by the pipeline.
package httpx

import (
	"net"
	"net/http"
	"time"
)

// Playlist sources are usually a handful of hosts, each fetched once per run.
const (
	defaultClientTimeout = 30 * time.Second
	maxConnectTimeout    = 10 * time.Second
	maxHeaderWait        = 15 * time.Second
	idleTimeout          = 90 * time.Second
	keepAlive            = 30 * time.Second
	sourceHosts          = 8
	connsPerSourceHost   = 4
)

// limits are the per-phase budgets derived from a single request timeout.
type limits struct {
	total      time.Duration
	connect    time.Duration
	headerWait time.Duration
}

// limitsFor caps each phase at the overall timeout so a short --timeout is honoured
// end to end. The total covers the whole body transfer and should fit the largest
// playlist expected.
func limitsFor(timeout time.Duration) limits {
	if timeout <= 0 {
		timeout = defaultClientTimeout
	}
	return limits{
		total:      timeout,
		connect:    min(timeout, maxConnectTimeout),
		headerWait: min(timeout, maxHeaderWait),
	}
}

func (l limits) transport() *http.Transport {
	dialer := &net.Dialer{Timeout: l.connect, KeepAlive: keepAlive}
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          sourceHosts * connsPerSourceHost,
		MaxIdleConnsPerHost:   connsPerSourceHost,
		IdleConnTimeout:       idleTimeout,
		TLSHandshakeTimeout:   l.connect,
		ResponseHeaderTimeout: l.headerWait,
	}
}

// NewClient returns the client used for playlist downloads. A non-positive timeout
// selects the default.
func NewClient(timeout time.Duration) *http.Client {
	l := limitsFor(timeout)
	return &http.Client{Timeout: l.total, Transport: l.transport()}
}
