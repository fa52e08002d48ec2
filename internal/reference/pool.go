// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

// Package reference builds the pool of authoritative channels that candidate tvg-ids
// are corrected against.
package reference

import (
	"github.com/arah91-bit/my-epg-automation/internal/normalize"
	"github.com/arah91-bit/my-epg-automation/internal/playlist"
)

// DefaultURLs are the iptv-org country playlists used as the reference set.
var DefaultURLs = []string{
	"https://iptv-org.github.io/iptv/countries/us.m3u",
	"https://iptv-org.github.io/iptv/countries/gb.m3u",
	"https://iptv-org.github.io/iptv/countries/ca.m3u",
	"https://iptv-org.github.io/iptv/countries/au.m3u",
}

// Pool is the read-only set of reference channels. It is fully built before matching
// starts and never mutated afterwards.
type Pool struct {
	records    []*playlist.Record
	normalized []string
	byCallSign map[string]*playlist.Record
}

// NewPool indexes records in the given order. When several records share a call sign
// the first one wins, so earlier reference sources take precedence.
func NewPool(records []*playlist.Record) *Pool {
	p := &Pool{
		records:    records,
		normalized: make([]string, len(records)),
		byCallSign: make(map[string]*playlist.Record),
	}
	for i, rec := range records {
		p.normalized[i] = normalize.Name(rec.Name())
		if cs, ok := rec.CallSign(); ok {
			if _, seen := p.byCallSign[cs]; !seen {
				p.byCallSign[cs] = rec
			}
		}
	}
	return p
}

// Len returns the number of reference records.
func (p *Pool) Len() int { return len(p.records) }

// Records returns all reference records in pool order.
func (p *Pool) Records() []*playlist.Record { return p.records }

// Record returns the i-th record and its normalized name.
func (p *Pool) Record(i int) (*playlist.Record, string) {
	return p.records[i], p.normalized[i]
}

// Lookup returns the reference record registered for a call sign.
func (p *Pool) Lookup(callSign string) (*playlist.Record, bool) {
	rec, ok := p.byCallSign[callSign]
	return rec, ok
}

// CallSigns returns the number of distinct call signs in the pool.
func (p *Pool) CallSigns() int { return len(p.byCallSign) }
