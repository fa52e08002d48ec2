// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

// Package match reconciles candidate channels with reference channels and rewrites
// their tvg-id when a confident match is found.
package match

import (
	"github.com/rs/zerolog"

	xglog "github.com/arah91-bit/my-epg-automation/internal/log"
	"github.com/arah91-bit/my-epg-automation/internal/normalize"
	"github.com/arah91-bit/my-epg-automation/internal/playlist"
	"github.com/arah91-bit/my-epg-automation/internal/reference"
)

// Method tells how a match was found.
type Method string

const (
	MethodCallSign Method = "callsign"
	MethodFuzzy    Method = "fuzzy"
)

// Match is the reference channel chosen for a candidate.
type Match struct {
	Reference *playlist.Record
	Score     int // 100 for call sign matches
	Method    Method
}

// Result summarizes a Correct pass.
type Result struct {
	Corrected  int // records whose tvg-id was rewritten
	ByCallSign int // corrections found through the call sign index
	ByFuzzy    int // corrections found through fuzzy name scoring
	Skipped    int // candidates without call sign match whose name normalizes to ""
	Unmatched  int // candidates with no match at or above the threshold
}

type outcome int

const (
	outcomeMatched outcome = iota
	outcomeUnmatched
	outcomeSkipped
)

// Corrector matches candidates against a reference pool. It performs no I/O.
type Corrector struct {
	threshold int
	logger    zerolog.Logger
}

// New returns a Corrector accepting fuzzy matches scoring at least threshold (0-100).
func New(threshold int, logger zerolog.Logger) *Corrector {
	return &Corrector{threshold: threshold, logger: logger}
}

// Threshold returns the fuzzy acceptance threshold.
func (c *Corrector) Threshold() int { return c.threshold }

// Best returns the reference chosen for candidate, if any.
func (c *Corrector) Best(candidate *playlist.Record, pool *reference.Pool) (Match, bool) {
	m, out := c.decide(candidate, pool)
	return m, out == outcomeMatched
}

func (c *Corrector) decide(candidate *playlist.Record, pool *reference.Pool) (Match, outcome) {
	if cs, ok := candidate.CallSign(); ok {
		if ref, found := pool.Lookup(cs); found {
			return Match{Reference: ref, Score: 100, Method: MethodCallSign}, outcomeMatched
		}
	}

	name := normalize.Name(candidate.Name())
	if name == "" {
		return Match{}, outcomeSkipped
	}

	var (
		best      *playlist.Record
		bestScore int
	)
	for i := 0; i < pool.Len(); i++ {
		ref, refName := pool.Record(i)
		if score := TokenSetRatio(name, refName); score > bestScore {
			bestScore = score
			best = ref
		}
	}
	if best == nil || bestScore < c.threshold {
		return Match{Score: bestScore}, outcomeUnmatched
	}
	return Match{Reference: best, Score: bestScore, Method: MethodFuzzy}, outcomeMatched
}

// Correct rewrites the tvg-id of every candidate whose best match carries a different
// identifier. Candidates are processed in order and modified in place; records with an
// empty tvg-id are never rewritten.
func (c *Corrector) Correct(candidates []*playlist.Record, pool *reference.Pool) Result {
	var res Result
	for _, cand := range candidates {
		m, out := c.decide(cand, pool)
		switch out {
		case outcomeSkipped:
			res.Skipped++
			c.logger.Debug().
				Str(xglog.FieldChannel, cand.SafeName()).
				Msg("name empty after normalization, skipping")
			continue
		case outcomeUnmatched:
			res.Unmatched++
			c.logger.Debug().
				Str(xglog.FieldChannel, cand.SafeName()).
				Int(xglog.FieldScore, m.Score).
				Msg("no reference match above threshold")
			continue
		}

		oldID := cand.Identifier()
		if !cand.SetIdentifier(m.Reference.Identifier()) {
			continue
		}
		res.Corrected++
		if m.Method == MethodCallSign {
			res.ByCallSign++
		} else {
			res.ByFuzzy++
		}
		c.logger.Info().
			Str(xglog.FieldEvent, "match.corrected").
			Str(xglog.FieldChannel, cand.SafeName()).
			Str(xglog.FieldOldTvgID, oldID).
			Str(xglog.FieldTvgID, cand.Identifier()).
			Str(xglog.FieldMethod, string(m.Method)).
			Int(xglog.FieldScore, m.Score).
			Msgf("Corrected %q -> new id: %s", cand.SafeName(), cand.Identifier())
	}
	return res
}
