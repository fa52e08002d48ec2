// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type fakeDownloader struct {
	mu    sync.Mutex
	pages map[string]string
	calls []string
}

func (f *fakeDownloader) FetchText(ctx context.Context, src string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, src)
	f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, ok := f.pages[src]
	if !ok {
		return "", fmt.Errorf("fetch %s: status 404", src)
	}
	return text, nil
}

type fakeProber struct {
	mu     sync.Mutex
	live   map[string]bool
	probed []string
	hook   func(url string)
}

func (f *fakeProber) Probe(ctx context.Context, url string) error {
	f.mu.Lock()
	f.probed = append(f.probed, url)
	hook := f.hook
	f.mu.Unlock()
	if hook != nil {
		hook(url)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !f.live[url] {
		return fmt.Errorf("ffprobe %s: exit status 1", url)
	}
	return nil
}

type fakeMetrics struct {
	mu          sync.Mutex
	up, down    int
	downloads   map[string][2]int // kind -> ok, failed
	corrections map[string]int
	skipped     int
	live        int
	references  int
	matched     int
	unmatched   int
	finished    bool
	textfiles   []string
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{downloads: map[string][2]int{}, corrections: map[string]int{}}
}

func (m *fakeMetrics) Probe(up bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if up {
		m.up++
	} else {
		m.down++
	}
}

func (m *fakeMetrics) Download(kind string, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.downloads[kind]
	if ok {
		c[0]++
	} else {
		c[1]++
	}
	m.downloads[kind] = c
}

func (m *fakeMetrics) Corrections(method string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.corrections[method] += n
}

func (m *fakeMetrics) Skipped(n int)           { m.skipped += n }
func (m *fakeMetrics) LiveChannels(n int)      { m.live = n }
func (m *fakeMetrics) ReferenceChannels(n int) { m.references = n }

func (m *fakeMetrics) RelevancySites(matched, unmatched int) {
	m.matched, m.unmatched = matched, unmatched
}

func (m *fakeMetrics) Finish(time.Duration, time.Time) { m.finished = true }

func (m *fakeMetrics) WriteTextfile(path string) error {
	m.textfiles = append(m.textfiles, path)
	return nil
}

// stepClock advances by step on every call.
func stepClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	now := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := now
		now = now.Add(step)
		return t
	}
}
