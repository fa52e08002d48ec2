// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package jobs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arah91-bit/my-epg-automation/internal/config"
	xglog "github.com/arah91-bit/my-epg-automation/internal/log"
	"github.com/arah91-bit/my-epg-automation/internal/normalize"
)

// ParseSourceList returns the playlist locations of a source list: one per line,
// blank lines and '#' comments ignored.
func ParseSourceList(text string) []string {
	var out []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := normalize.Line(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// resolveSources returns the source list entries followed by cfg.Sources. A missing
// source list is tolerated only when cfg.Sources is non-empty.
func resolveSources(fsys afero.Fs, cfg config.AppConfig, logger zerolog.Logger) ([]string, error) {
	var sources []string
	if cfg.SourceList != "" {
		data, err := afero.ReadFile(fsys, cfg.SourceList)
		switch {
		case err == nil:
			sources = ParseSourceList(string(data))
		case errors.Is(err, fs.ErrNotExist) && len(cfg.Sources) > 0:
			logger.Debug().
				Str(xglog.FieldPath, cfg.SourceList).
				Msg("source list not found, using configured sources only")
		default:
			return nil, fmt.Errorf("read source list: %w", err)
		}
	}
	sources = append(sources, cfg.Sources...)
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	return sources, nil
}
