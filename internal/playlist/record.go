// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package playlist

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mozillazg/go-unidecode"
)

var tvgIDPattern = regexp.MustCompile(`tvg-id="([^"]*)"`)

// Record is one channel entry: an #EXTINF descriptor line and the stream URL after it.
//
// Name and call sign are derived from the descriptor once, in NewRecord. The tvg-id is
// the only mutable part and changes through SetIdentifier, which keeps the descriptor
// in sync.
type Record struct {
	descriptor string
	url        string
	identifier string
	name       string
	callSign   string
}

// NewRecord builds a record from a descriptor line and its stream URL.
func NewRecord(descriptor, url string) *Record {
	r := &Record{
		descriptor: strings.TrimSpace(descriptor),
		url:        strings.TrimSpace(url),
	}
	if m := tvgIDPattern.FindStringSubmatch(r.descriptor); m != nil {
		r.identifier = m[1]
	}
	if i := strings.LastIndex(r.descriptor, ","); i >= 0 {
		r.name = strings.TrimSpace(r.descriptor[i+1:])
	} else {
		r.name = r.descriptor
	}
	r.callSign = findCallSign(r.name)
	return r
}

// findCallSign returns the first K or W followed by two or three ASCII letters that
// stands as a whole word, uppercased. Word boundaries are Unicode-aware, so "Ökwin"
// has no call sign. Four letters are preferred over three at the same position.
func findCallSign(name string) string {
	for i, c := range name {
		if c != 'K' && c != 'W' && c != 'k' && c != 'w' {
			continue
		}
		if prev, _ := utf8.DecodeLastRuneInString(name[:i]); i > 0 && isWordRune(prev) {
			continue
		}
		rest := name[i+1:]
		for _, n := range []int{3, 2} {
			if len(rest) < n || !asciiLetters(rest[:n]) {
				continue
			}
			if next, size := utf8.DecodeRuneInString(rest[n:]); size == 0 || !isWordRune(next) {
				return strings.ToUpper(name[i : i+1+n])
			}
		}
	}
	return ""
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func asciiLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i] | 0x20; c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

// Descriptor returns the #EXTINF line.
func (r *Record) Descriptor() string { return r.descriptor }

// URL returns the stream URL.
func (r *Record) URL() string { return r.url }

// Identifier returns the tvg-id, or "" when the descriptor carries none.
func (r *Record) Identifier() string { return r.identifier }

// Name returns the display name: the text after the last comma of the descriptor.
func (r *Record) Name() string { return r.name }

// CallSign returns the North American call sign found in the name (K/W + 2-3 letters).
func (r *Record) CallSign() (string, bool) { return r.callSign, r.callSign != "" }

// SafeName returns the name transliterated to ASCII for logs and terminals.
func (r *Record) SafeName() string { return unidecode.Unidecode(r.name) }

// SetIdentifier replaces the tvg-id with id and rewrites the quoted value in the
// descriptor. Records without a tvg-id, or already carrying id, are left untouched.
// It reports whether the record changed.
func (r *Record) SetIdentifier(id string) bool {
	if r.identifier == "" || r.identifier == id {
		return false
	}
	r.descriptor = strings.ReplaceAll(r.descriptor, `tvg-id="`+r.identifier+`"`, `tvg-id="`+id+`"`)
	r.identifier = id
	return true
}
