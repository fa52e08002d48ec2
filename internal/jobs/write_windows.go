// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

//go:build windows

package jobs

import (
	"os"
	"path/filepath"
)

// replaceFile stages data in the target directory and renames it over path.
// renameio has no Windows support, and rename there is not durable across crashes.
func replaceFile(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".epgclean-*.m3u.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), playlistMode); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
