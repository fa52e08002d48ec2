// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package jobs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	xglog "github.com/arah91-bit/my-epg-automation/internal/log"
	"github.com/arah91-bit/my-epg-automation/internal/playlist"
)

const playlistMode os.FileMode = 0o644

// writePlaylist renders records and swaps them into path in one step, so readers see
// either the previous playlist or the complete new one. It returns the bytes written.
func writePlaylist(ctx context.Context, path string, records []*playlist.Record) (int, error) {
	var buf bytes.Buffer
	if err := playlist.WriteM3U(&buf, records); err != nil {
		return 0, fmt.Errorf("render playlist: %w", err)
	}
	if err := replaceFile(path, buf.Bytes()); err != nil {
		return 0, fmt.Errorf("replace %s: %w", path, err)
	}
	xglog.FromContext(ctx).Debug().
		Str(xglog.FieldPath, path).
		Int("bytes", buf.Len()).
		Msg("wrote playlist file")
	return buf.Len(), nil
}

// lockOutput takes a non-blocking exclusive lock next to the output file so two runs
// never write the same playlist.
func lockOutput(output string) (*flock.Flock, error) {
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	lock := flock.New(output + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", lock.Path(), err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOutputLocked, lock.Path())
	}
	return lock, nil
}
