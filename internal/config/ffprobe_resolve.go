// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arah91-bit/my-epg-automation/internal/probe"
)

// ResolveFFprobeBin returns the ffprobe executable to run.
//
// Resolution order:
// 1) Explicit ffprobeBin (probe.bin / EPGCLEAN_FFPROBE_BIN)
// 2) Sibling of a concrete ffmpeg path (.../ffmpeg[.exe] -> .../ffprobe[.exe]) if it exists
// 3) probe.DefaultBin, looked up on PATH when executed
func ResolveFFprobeBin(ffprobeBin, ffmpegBin string) string {
	return resolveFFprobeBinWithStat(ffprobeBin, ffmpegBin, os.Stat)
}

func resolveFFprobeBinWithStat(ffprobeBin, ffmpegBin string, stat func(string) (os.FileInfo, error)) string {
	if ffprobeBin = strings.TrimSpace(ffprobeBin); ffprobeBin != "" {
		return ffprobeBin
	}

	ffmpegBin = strings.TrimSpace(ffmpegBin)
	// A bare "ffmpeg" is a PATH lookup, there is no directory to derive from.
	if ffmpegBin == "" || !strings.ContainsAny(ffmpegBin, `/\`) {
		return probe.DefaultBin
	}

	base := filepath.Base(ffmpegBin)
	ext := filepath.Ext(base)
	if !strings.EqualFold(strings.TrimSuffix(base, ext), "ffmpeg") {
		return probe.DefaultBin
	}

	candidate := filepath.Join(filepath.Dir(ffmpegBin), "ffprobe"+ext)
	if fi, err := stat(candidate); err == nil && fi != nil && !fi.IsDir() {
		return candidate
	}
	return probe.DefaultBin
}
