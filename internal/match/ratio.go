// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package match

import (
	"math"
	"sort"
	"strings"
)

// Ratio returns the normalized Indel similarity of a and b in [0,100]:
// 100 * (1 - indel(a,b) / (len(a)+len(b))), where indel counts insertions and deletions.
// Two empty strings are identical.
func Ratio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	return round(normSimilarity(indel(ra, rb), len(ra)+len(rb)))
}

// TokenSetRatio compares two strings as sets of whitespace-separated tokens, ignoring
// order and duplicates, and returns an integer score in [0,100].
//
// With I the sorted intersection and A, B the sorted remainders of each side, the score
// is the best of Ratio(I+A, I+B), Ratio(I, I+A) and Ratio(I, I+B). When one side is a
// subset of the other (and they share a token) the score is 100. An empty side scores 0.
func TokenSetRatio(a, b string) int {
	tokensA, tokensB := tokenSet(a), tokenSet(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	var sect, diffAB, diffBA []string
	for tok := range tokensA {
		if _, ok := tokensB[tok]; ok {
			sect = append(sect, tok)
		} else {
			diffAB = append(diffAB, tok)
		}
	}
	for tok := range tokensB {
		if _, ok := tokensA[tok]; !ok {
			diffBA = append(diffBA, tok)
		}
	}

	if len(sect) > 0 && (len(diffAB) == 0 || len(diffBA) == 0) {
		return 100
	}

	sort.Strings(sect)
	sort.Strings(diffAB)
	sort.Strings(diffBA)

	joinedAB := []rune(strings.Join(diffAB, " "))
	joinedBA := []rune(strings.Join(diffBA, " "))
	abLen, baLen := len(joinedAB), len(joinedBA)
	sectLen := len([]rune(strings.Join(sect, " ")))

	sep := 0
	if sectLen > 0 {
		sep = 1
	}
	sectABLen := sectLen + sep + abLen
	sectBALen := sectLen + sep + baLen

	// I+A vs I+B differ only in their remainders.
	best := normSimilarity(indel(joinedAB, joinedBA), sectABLen+sectBALen)
	if sectLen == 0 {
		return round(best)
	}

	// I vs I+A (and I+B) differ only by the appended remainder.
	best = math.Max(best, normSimilarity(sep+abLen, sectLen+sectABLen))
	best = math.Max(best, normSimilarity(sep+baLen, sectLen+sectBALen))
	return round(best)
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func normSimilarity(dist, lenSum int) float64 {
	if lenSum == 0 {
		return 100
	}
	return 100 - 100*float64(dist)/float64(lenSum)
}

// round uses half-to-even so scores agree with the reference fuzzy matching tooling.
func round(score float64) int {
	return int(math.RoundToEven(score))
}

// indel returns the insertion/deletion edit distance: len(a)+len(b)-2*LCS(a,b).
func indel(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return len(a) + len(b)
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				cur[j] = prev[j-1] + 1
			case prev[j] >= cur[j-1]:
				cur[j] = prev[j]
			default:
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return len(a) + len(b) - 2*prev[len(b)]
}
