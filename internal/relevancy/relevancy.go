// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

// Package relevancy ranks EPG grabber sites by how many of a playlist's channel ids
// their channel lists mention.
package relevancy

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/arah91-bit/my-epg-automation/internal/fetch"
	xglog "github.com/arah91-bit/my-epg-automation/internal/log"
	"github.com/arah91-bit/my-epg-automation/internal/normalize"
)

var (
	tvgIDPattern   = regexp.MustCompile(`tvg-id="([^"]+)"`)
	channelPattern = regexp.MustCompile(`<channel .*id="`)
)

// SiteReport is the analysis result for one site.
type SiteReport struct {
	Site    string
	Matches int // playlist ids found in the site's channel list
	Total   int // channel entries in the site's channel list
	Err     error
}

// PlaylistIDs returns the distinct non-empty tvg-id values of a playlist in first-seen order.
func PlaylistIDs(text string) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, m := range tvgIDPattern.FindAllStringSubmatch(text, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		ids = append(ids, m[1])
	}
	return ids
}

// ParseSites returns the site names of a sites list: one per line, blank lines and
// lines starting with '#' ignored.
func ParseSites(text string) []string {
	var sites []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		if line = normalize.Line(line); line != "" {
			sites = append(sites, line)
		}
	}
	return sites
}

// LoadSites reads and parses a sites list.
func LoadSites(fsys afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read sites list: %w", err)
	}
	return ParseSites(string(data)), nil
}

// CountChannels counts channel entries in a channels.xml document. At most one entry
// is counted per line.
func CountChannels(content string) int {
	return len(channelPattern.FindAllStringIndex(content, -1))
}

// CountMatches counts the ids that occur anywhere in content.
func CountMatches(content string, ids []string) int {
	n := 0
	for _, id := range ids {
		if strings.Contains(content, id) {
			n++
		}
	}
	return n
}

// Analyzer scans an iptv-org/epg style sites directory.
type Analyzer struct {
	fs   afero.Fs
	dir  string
	opts fetch.Options
}

// NewAnalyzer returns an Analyzer reading <dir>/<site>/<site>.channels.xml from fsys.
func NewAnalyzer(fsys afero.Fs, dir string, opts fetch.Options) *Analyzer {
	return &Analyzer{fs: fsys, dir: dir, opts: opts}
}

// Analyze scans every site concurrently and returns the reports ranked by Rank.
// A missing site directory or channel file yields a zero report; an unreadable file
// yields a zero report with Err set.
func (a *Analyzer) Analyze(ctx context.Context, sites, ids []string) ([]SiteReport, error) {
	if len(ids) == 0 {
		return nil, ErrNoPlaylistIDs
	}
	if len(sites) == 0 {
		return nil, ErrNoSites
	}
	if ok, err := afero.DirExists(a.fs, a.dir); err != nil || !ok {
		return nil, fmt.Errorf("%w: %s", ErrSitesDirNotFound, a.dir)
	}

	logger := xglog.WithComponentFromContext(ctx, "relevancy")
	logger.Info().
		Str(xglog.FieldEvent, "relevancy.start").
		Int("sites", len(sites)).
		Int("channels", len(ids)).
		Msgf("analyzing %d sites against %d channels", len(sites), len(ids))

	results := fetch.Map(ctx, a.opts, sites, func(_ context.Context, site string) (SiteReport, error) {
		return a.scanSite(site, ids), nil
	})

	reports := make([]SiteReport, len(sites))
	for i, res := range results {
		rep := res.Value
		if res.Err != nil {
			rep = SiteReport{Site: sites[i], Err: res.Err}
		}
		if rep.Err != nil {
			logger.Warn().
				Err(rep.Err).
				Str(xglog.FieldEvent, "relevancy.site_failed").
				Str(xglog.FieldSite, rep.Site).
				Msg("could not process site")
		}
		reports[i] = rep
	}

	Rank(reports)
	return reports, nil
}

func (a *Analyzer) scanSite(site string, ids []string) SiteReport {
	rep := SiteReport{Site: site}

	siteDir := filepath.Join(a.dir, site)
	if ok, err := afero.DirExists(a.fs, siteDir); err != nil || !ok {
		return rep
	}

	channelFile := filepath.Join(siteDir, site+".channels.xml")
	data, err := afero.ReadFile(a.fs, channelFile)
	if err != nil {
		if !os.IsNotExist(err) {
			rep.Err = fmt.Errorf("read %s: %w", channelFile, err)
		}
		return rep
	}

	content := string(data)
	rep.Total = CountChannels(content)
	rep.Matches = CountMatches(content, ids)
	return rep
}

// Rank orders reports by Matches, highest first. Equal counts keep their input order.
func Rank(reports []SiteReport) {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Matches > reports[j].Matches
	})
}

// Recommend returns the ranked reports with at least minMatches matches.
func Recommend(ranked []SiteReport, minMatches int) []SiteReport {
	var out []SiteReport
	for _, rep := range ranked {
		if rep.Matches >= minMatches {
			out = append(out, rep)
		}
	}
	return out
}
