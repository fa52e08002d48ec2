// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseString(t *testing.T) {
	t.Setenv("EPGCLEAN_TEST_STRING", "from-env")
	t.Setenv("EPGCLEAN_TEST_EMPTY", "")

	if got := ParseString("EPGCLEAN_TEST_STRING", "default"); got != "from-env" {
		t.Errorf("set: got %q", got)
	}
	if got := ParseString("EPGCLEAN_TEST_EMPTY", "default"); got != "default" {
		t.Errorf("empty: got %q", got)
	}
	if got := ParseString("EPGCLEAN_TEST_UNSET", "default"); got != "default" {
		t.Errorf("unset: got %q", got)
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  int
	}{
		{name: "valid", value: "42", set: true, want: 42},
		{name: "negative", value: "-3", set: true, want: -3},
		{name: "trimmed", value: " 7 ", set: true, want: 7},
		{name: "invalid", value: "abc", set: true, want: 10},
		{name: "empty", value: "", set: true, want: 10},
		{name: "unset", want: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "EPGCLEAN_TEST_INT"
			if tt.set {
				t.Setenv(key, tt.value)
			}
			if got := ParseInt(key, 10); got != tt.want {
				t.Errorf("ParseInt = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	t.Setenv("EPGCLEAN_TEST_DUR", "1m30s")
	if got := ParseDuration("EPGCLEAN_TEST_DUR", time.Second); got != 90*time.Second {
		t.Errorf("got %v", got)
	}
	t.Setenv("EPGCLEAN_TEST_DUR", "15")
	if got := ParseDuration("EPGCLEAN_TEST_DUR", time.Second); got != time.Second {
		t.Errorf("unitless value should fall back to default, got %v", got)
	}
}

func TestParseFloat(t *testing.T) {
	t.Setenv("EPGCLEAN_TEST_FLOAT", "2.5")
	if got := ParseFloat("EPGCLEAN_TEST_FLOAT", 0); got != 2.5 {
		t.Errorf("got %v", got)
	}
	t.Setenv("EPGCLEAN_TEST_FLOAT", "fast")
	if got := ParseFloat("EPGCLEAN_TEST_FLOAT", 1); got != 1 {
		t.Errorf("invalid value should fall back to default, got %v", got)
	}
}

func TestParseBool(t *testing.T) {
	for in, want := range map[string]bool{"true": true, "YES": true, "1": true, "false": false, "no": false, "0": false} {
		t.Setenv("EPGCLEAN_TEST_BOOL", in)
		if got := ParseBool("EPGCLEAN_TEST_BOOL", !want); got != want {
			t.Errorf("ParseBool(%q) = %v, want %v", in, got, want)
		}
	}
	t.Setenv("EPGCLEAN_TEST_BOOL", "maybe")
	if got := ParseBool("EPGCLEAN_TEST_BOOL", true); !got {
		t.Error("invalid value should fall back to default")
	}
}

func TestParseList(t *testing.T) {
	t.Setenv("EPGCLEAN_TEST_LIST", " a.m3u ,, https://x/b.m3u ,")
	if diff := cmp.Diff([]string{"a.m3u", "https://x/b.m3u"}, ParseList("EPGCLEAN_TEST_LIST", nil)); diff != "" {
		t.Errorf("ParseList (-want +got):\n%s", diff)
	}

	def := []string{"default.m3u"}
	if diff := cmp.Diff(def, ParseList("EPGCLEAN_TEST_LIST_UNSET", def)); diff != "" {
		t.Errorf("unset ParseList (-want +got):\n%s", diff)
	}
}
