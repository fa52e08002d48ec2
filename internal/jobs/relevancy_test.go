// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package jobs

import (
	"context"
	"io/fs"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arah91-bit/my-epg-automation/internal/config"
	"github.com/arah91-bit/my-epg-automation/internal/relevancy"
)

const cleanedPlaylist = `#EXTM3U
#EXTINF:-1 tvg-id="ESPN.us",ESPN
http://live/espn
#EXTINF:-1 tvg-id="CNN.us",CNN
http://live/cnn
#EXTINF:-1 tvg-id="WABCDT.us",ABC 7
http://live/wabc
`

func relevancyFixture(t *testing.T) (config.AppConfig, Deps, *fakeMetrics) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	write := func(path, content string) {
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
	}
	write("/data/cleaned_playlist.m3u", cleanedPlaylist)
	write("/data/epgsites.clean.txt", "# sites\nsparse.com\nrich.com\nempty.com\nabsent.com\n")
	write("/epg/sites/sparse.com/sparse.com.channels.xml",
		`<channel site="sparse.com" xmltv_id="CNN.us">CNN</channel>
<channel site="sparse.com" xmltv_id="BBC1.uk">BBC One</channel>
`)
	write("/epg/sites/rich.com/rich.com.channels.xml",
		`<channel site="rich.com" xmltv_id="ESPN.us">ESPN</channel>
<channel site="rich.com" xmltv_id="CNN.us">CNN</channel>
<channel site="rich.com" xmltv_id="WABCDT.us">WABC</channel>
`)
	write("/epg/sites/empty.com/empty.com.channels.xml", `<channel site="empty.com" xmltv_id="X.us">X</channel>`+"\n")

	cfg := config.Defaults()
	cfg.Relevancy.Playlist = "/data/cleaned_playlist.m3u"
	cfg.Relevancy.SitesFile = "/data/epgsites.clean.txt"
	cfg.Relevancy.SitesDir = "/epg/sites"

	m := newFakeMetrics()
	deps := Deps{
		Fs:      fsys,
		Metrics: m,
		Clock:   stepClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 2*time.Second),
	}
	return cfg, deps, m
}

func TestRelevancy(t *testing.T) {
	cfg, deps, m := relevancyFixture(t)

	stats, err := Relevancy(context.Background(), cfg, deps)
	require.NoError(t, err)

	assert.NotEmpty(t, stats.RunID)
	assert.Equal(t, 3, stats.PlaylistIDs)
	assert.Equal(t, []relevancy.SiteReport{
		{Site: "rich.com", Matches: 3, Total: 3},
		{Site: "sparse.com", Matches: 1, Total: 2},
		{Site: "empty.com", Matches: 0, Total: 1},
		{Site: "absent.com"},
	}, stats.Sites)
	assert.Equal(t, stats.Sites[:2], stats.Recommended)
	assert.Equal(t, 2*time.Second, stats.Duration)

	assert.Equal(t, 2, m.matched)
	assert.Equal(t, 2, m.unmatched)
	assert.True(t, m.finished)
}

func TestRelevancy_MinMatches(t *testing.T) {
	cfg, deps, _ := relevancyFixture(t)
	cfg.Relevancy.MinMatches = 2

	stats, err := Relevancy(context.Background(), cfg, deps)
	require.NoError(t, err)
	require.Len(t, stats.Recommended, 1)
	assert.Equal(t, "rich.com", stats.Recommended[0].Site)
}

func TestRelevancy_Errors(t *testing.T) {
	t.Run("missing playlist", func(t *testing.T) {
		cfg, deps, _ := relevancyFixture(t)
		cfg.Relevancy.Playlist = "/data/nope.m3u"
		_, err := Relevancy(context.Background(), cfg, deps)
		require.ErrorIs(t, err, fs.ErrNotExist)
	})
	t.Run("missing sites dir", func(t *testing.T) {
		cfg, deps, _ := relevancyFixture(t)
		cfg.Relevancy.SitesDir = "/nowhere"
		_, err := Relevancy(context.Background(), cfg, deps)
		require.ErrorIs(t, err, relevancy.ErrSitesDirNotFound)
	})
	t.Run("playlist without ids", func(t *testing.T) {
		cfg, deps, _ := relevancyFixture(t)
		require.NoError(t, afero.WriteFile(deps.Fs, cfg.Relevancy.Playlist, []byte("#EXTM3U\n"), 0o644))
		_, err := Relevancy(context.Background(), cfg, deps)
		require.ErrorIs(t, err, relevancy.ErrNoPlaylistIDs)
	})
}
