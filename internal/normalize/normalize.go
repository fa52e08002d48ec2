// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

// Package normalize holds the deterministic text cleaning applied before channel names
// are compared.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

// NoiseTokens are removed from lowercased names as plain substrings, in this order.
// Removal is not word-aware: "hd" is also stripped from inside "shdw".
var NoiseTokens = []string{"hd", "fhd", "sd", "4k", "uhd", "channel", "tv", "east", "west"}

var (
	bracketed  = regexp.MustCompile(`[\(\[].*?[\)\]]`)
	disallowed = regexp.MustCompile(`[^a-z0-9 ]`)
)

// Name cleans a channel display name for fuzzy comparison.
//
// A single pass lowercases, strips noise tokens, strips parenthesized or bracketed
// text, drops everything outside [a-z0-9 ] and collapses whitespace. Stripping can
// expose new noise ("hhdd" -> "hd"), so the pass is repeated until the result is
// stable, which makes Name idempotent.
func Name(name string) string {
	out := pass(name)
	for {
		next := pass(out)
		if next == out {
			return out
		}
		out = next
	}
}

func pass(name string) string {
	name = strings.ToLower(name)
	for _, noise := range NoiseTokens {
		name = strings.ReplaceAll(name, noise, "")
	}
	name = bracketed.ReplaceAllString(name, "")
	name = disallowed.ReplaceAllString(name, "")
	return strings.Join(strings.Fields(name), " ")
}

// Line trims Unicode whitespace and invisible edge characters (zero-width space,
// joiners, BOM) without changing case.
func Line(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) ||
			r == '\u200B' || // Zero Width Space
			r == '\u200C' || // Zero Width Non-Joiner
			r == '\u200D' || // Zero Width Joiner
			r == '\uFEFF' // Zero Width Non-Breaking Space (BOM)
	})
}
