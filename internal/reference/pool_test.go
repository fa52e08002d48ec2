// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package reference

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arah91-bit/my-epg-automation/internal/fetch"
	"github.com/arah91-bit/my-epg-automation/internal/playlist"
)

func rec(id, name string) *playlist.Record {
	return playlist.NewRecord(fmt.Sprintf(`#EXTINF:-1 tvg-id="%s",%s`, id, name), "http://ref/"+id)
}

func TestNewPool_CallSignFirstWins(t *testing.T) {
	first := rec("WABC.us", "WABC New York")
	second := rec("WABC2.us", "WABC Alt Feed")
	pool := NewPool([]*playlist.Record{first, rec("ESPN.us", "ESPN"), second})

	got, ok := pool.Lookup("WABC")
	require.True(t, ok)
	assert.Same(t, first, got)
	assert.Equal(t, 1, pool.CallSigns())
	assert.Equal(t, 3, pool.Len())

	_, ok = pool.Lookup("KABC")
	assert.False(t, ok)
}

func TestNewPool_CachesNormalizedNames(t *testing.T) {
	pool := NewPool([]*playlist.Record{rec("ESPN.us", "ESPN HD (East)"), rec("x", "Discovery Channel")})
	_, n0 := pool.Record(0)
	_, n1 := pool.Record(1)
	assert.Equal(t, "espn", n0)
	assert.Equal(t, "discovery", n1)
}

type fakeDownloader struct {
	bodies map[string]string
	delay  map[string]time.Duration
}

func (f fakeDownloader) FetchText(ctx context.Context, src string) (string, error) {
	if d := f.delay[src]; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	body, ok := f.bodies[src]
	if !ok {
		return "", errors.New("404 not found")
	}
	return body, nil
}

func playlistText(entries ...[2]string) string {
	s := "#EXTM3U\n"
	for _, e := range entries {
		s += fmt.Sprintf("#EXTINF:-1 tvg-id=\"%s\",%s\nhttp://ref/%s\n", e[0], e[1], e[0])
	}
	return s
}

func TestBuild_FaultIsolation(t *testing.T) {
	urls := []string{"u1", "u2", "u3", "u4", "u5"}
	dl := fakeDownloader{bodies: map[string]string{
		"u1": playlistText([2]string{"a.us", "A"}),
		"u3": playlistText([2]string{"c.us", "C"}, [2]string{"c2.us", "C Two"}),
		"u5": playlistText([2]string{"e.us", "E"}),
	}}

	pool, sources := Build(context.Background(), urls, dl, fetch.Options{Workers: 5})

	require.Len(t, sources, 5)
	ok := 0
	for _, s := range sources {
		if s.Err == nil {
			ok++
		}
	}
	assert.Equal(t, 3, ok)
	assert.Error(t, sources[1].Err)
	assert.Error(t, sources[3].Err)
	assert.Equal(t, 2, sources[2].Channels)
	assert.Equal(t, 4, pool.Len())
}

func TestBuild_OrderFollowsURLsNotCompletion(t *testing.T) {
	urls := []string{"slow", "fast"}
	dl := fakeDownloader{
		bodies: map[string]string{
			"slow": playlistText([2]string{"WXYZ.slow", "WXYZ Detroit"}),
			"fast": playlistText([2]string{"WXYZ.fast", "WXYZ Detroit HD"}),
		},
		delay: map[string]time.Duration{"slow": 30 * time.Millisecond},
	}

	pool, _ := Build(context.Background(), urls, dl, fetch.Options{Workers: 2})

	require.Equal(t, 2, pool.Len())
	assert.Equal(t, "WXYZ.slow", pool.Records()[0].Identifier())
	got, ok := pool.Lookup("WXYZ")
	require.True(t, ok)
	assert.Equal(t, "WXYZ.slow", got.Identifier())
}

func TestBuild_AllSourcesFail(t *testing.T) {
	pool, sources := Build(context.Background(), []string{"x", "y"}, fakeDownloader{}, fetch.Options{Workers: 2})
	assert.Equal(t, 0, pool.Len())
	assert.Len(t, sources, 2)
}

func TestBuild_LongDescriptorLine(t *testing.T) {
	logo := "data:image/png;base64," + strings.Repeat("QUJD", 512*1024)
	body := "#EXTM3U\n" +
		"#EXTINF:-1 tvg-id=\"a.us\",A\nhttp://ref/a\n" +
		"#EXTINF:-1 tvg-id=\"big.us\" tvg-logo=\"" + logo + "\",Big\nhttp://ref/big\n" +
		"#EXTINF:-1 tvg-id=\"c.us\",C\nhttp://ref/c\n"
	dl := fakeDownloader{bodies: map[string]string{"u1": body}}

	pool, sources := Build(context.Background(), []string{"u1"}, dl, fetch.Options{Workers: 1})

	require.NoError(t, sources[0].Err)
	assert.Equal(t, 3, sources[0].Channels)
	assert.Equal(t, 3, pool.Len())
	assert.Equal(t, "c.us", pool.Records()[2].Identifier())
}
