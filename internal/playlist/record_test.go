// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package playlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRecord_Derivations(t *testing.T) {
	tests := []struct {
		name         string
		descriptor   string
		wantID       string
		wantName     string
		wantCallSign string
	}{
		{
			name:       "full attributes",
			descriptor: `#EXTINF:-1 tvg-id="ESPN.us" tvg-logo="http://l/espn.png" group-title="Sports",ESPN HD (East)`,
			wantID:     "ESPN.us",
			wantName:   "ESPN HD (East)",
		},
		{
			name:         "call sign in name",
			descriptor:   `#EXTINF:-1 tvg-id="abc.us",WABC-TV New York`,
			wantID:       "abc.us",
			wantName:     "WABC-TV New York",
			wantCallSign: "WABC",
		},
		{
			name:         "lowercase call sign is uppercased",
			descriptor:   `#EXTINF:-1 tvg-id="",kcbs los angeles`,
			wantName:     "kcbs los angeles",
			wantCallSign: "KCBS",
		},
		{
			name:         "three letter call sign",
			descriptor:   `#EXTINF:-1,KYW News`,
			wantName:     "KYW News",
			wantCallSign: "KYW",
		},
		{
			name:       "five letters is not a call sign",
			descriptor: `#EXTINF:-1 tvg-id="x",WABCD`,
			wantID:     "x",
			wantName:   "WABCD",
		},
		{
			name:       "letter before is not a word boundary",
			descriptor: `#EXTINF:-1,Ökwin`,
			wantName:   "Ökwin",
		},
		{
			name:       "accented letter after is not a word boundary",
			descriptor: `#EXTINF:-1,WABCé`,
			wantName:   "WABCé",
		},
		{
			name:         "accented word before a call sign",
			descriptor:   `#EXTINF:-1,Télé WXYZ`,
			wantName:     "Télé WXYZ",
			wantCallSign: "WXYZ",
		},
		{
			name:         "shorter call sign when the fourth letter is followed by punctuation",
			descriptor:   `#EXTINF:-1,KYW-TV`,
			wantName:     "KYW-TV",
			wantCallSign: "KYW",
		},
		{
			name:       "digit after is not a word boundary",
			descriptor: `#EXTINF:-1,KCBS2`,
			wantName:   "KCBS2",
		},
		{
			name:         "later word matches when the first does not",
			descriptor:   `#EXTINF:-1,Kanal WPIX`,
			wantName:     "Kanal WPIX",
			wantCallSign: "WPIX",
		},
		{
			name:       "missing tvg-id",
			descriptor: `#EXTINF:-1 group-title="News",BBC News`,
			wantName:   "BBC News",
		},
		{
			name:       "last comma wins",
			descriptor: `#EXTINF:-1 tvg-name="a,b",Name, Other Comma`,
			wantName:   "Other Comma",
		},
		{
			name:       "no comma",
			descriptor: `#EXTINF:-1`,
			wantName:   "#EXTINF:-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecord(tt.descriptor, " http://stream/1 ")
			assert.Equal(t, tt.wantID, rec.Identifier())
			assert.Equal(t, tt.wantName, rec.Name())
			cs, ok := rec.CallSign()
			assert.Equal(t, tt.wantCallSign, cs)
			assert.Equal(t, tt.wantCallSign != "", ok)
			assert.Equal(t, "http://stream/1", rec.URL())
		})
	}
}

func TestSetIdentifier(t *testing.T) {
	t.Run("rewrites id and descriptor together", func(t *testing.T) {
		rec := NewRecord(`#EXTINF:-1 tvg-id="espn.old" tvg-name="ESPN",ESPN`, "http://s")
		assert.True(t, rec.SetIdentifier("ESPN.us"))
		assert.Equal(t, "ESPN.us", rec.Identifier())
		assert.Equal(t, `#EXTINF:-1 tvg-id="ESPN.us" tvg-name="ESPN",ESPN`, rec.Descriptor())
		assert.Equal(t, "ESPN", rec.Name())
	})

	t.Run("same id is a no-op", func(t *testing.T) {
		desc := `#EXTINF:-1 tvg-id="ESPN.us",ESPN`
		rec := NewRecord(desc, "http://s")
		assert.False(t, rec.SetIdentifier("ESPN.us"))
		assert.Equal(t, desc, rec.Descriptor())
	})

	t.Run("empty current id is never corrected", func(t *testing.T) {
		desc := `#EXTINF:-1 tvg-id="",ESPN`
		rec := NewRecord(desc, "http://s")
		assert.False(t, rec.SetIdentifier("ESPN.us"))
		assert.Equal(t, "", rec.Identifier())
		assert.Equal(t, desc, rec.Descriptor())
	})

	t.Run("derived fields are not recomputed", func(t *testing.T) {
		rec := NewRecord(`#EXTINF:-1 tvg-id="a",WXYZ Detroit`, "http://s")
		assert.True(t, rec.SetIdentifier("KABC.us"))
		cs, _ := rec.CallSign()
		assert.Equal(t, "WXYZ", cs)
		assert.Equal(t, "WXYZ Detroit", rec.Name())
	})
}

func TestSafeName(t *testing.T) {
	rec := NewRecord(`#EXTINF:-1,Télé-Québec`, "http://s")
	assert.Equal(t, "Tele-Quebec", rec.SafeName())
}
