// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

// Package probe checks whether stream URLs are reachable.
package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"github.com/arah91-bit/my-epg-automation/internal/procgroup"
)

// DefaultBin is the ffprobe executable looked up on PATH when none is configured.
const DefaultBin = "ffprobe"

const maxStderr = 4096

// ErrBinaryNotFound is returned when the probe executable cannot be located.
var ErrBinaryNotFound = errors.New("probe binary not found")

// Prober decides whether a stream answers. A nil error means reachable.
type Prober interface {
	Probe(ctx context.Context, url string) error
}

// Reachable reports whether p.Probe succeeds for url.
func Reachable(ctx context.Context, p Prober, url string) bool {
	return p.Probe(ctx, url) == nil
}

// FFprobe runs `ffprobe -v error <url>`. A zero exit status means the stream is up;
// a non-zero exit, a missing binary and context expiry all count as down.
type FFprobe struct {
	bin string
}

// NewFFprobe returns an FFprobe using bin, or DefaultBin when bin is empty.
func NewFFprobe(bin string) *FFprobe {
	bin = strings.TrimSpace(bin)
	if bin == "" {
		bin = DefaultBin
	}
	return &FFprobe{bin: bin}
}

// Bin returns the configured executable.
func (f *FFprobe) Bin() string { return f.bin }

// Check verifies that the executable can be found, so a run can fail fast instead of
// reporting every channel as down.
func (f *FFprobe) Check() error {
	if _, err := exec.LookPath(f.bin); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBinaryNotFound, f.bin, err)
	}
	return nil
}

// Probe implements Prober.
func (f *FFprobe) Probe(ctx context.Context, url string) error {
	// #nosec G204 - the binary is operator configured and the URL is passed as a single argument
	cmd := exec.CommandContext(ctx, f.bin, "-v", "error", url)
	procgroup.Bind(cmd)
	cmd.WaitDelay = time.Second

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrBinaryNotFound, f.bin)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("ffprobe %s: %w", url, ctxErr)
		}
		msg := strings.TrimSpace(stderr.String())
		if len(msg) > maxStderr {
			msg = msg[:maxStderr] + "..."
		}
		if msg != "" {
			return fmt.Errorf("ffprobe %s: %w (stderr: %s)", url, err, msg)
		}
		return fmt.Errorf("ffprobe %s: %w", url, err)
	}
	return nil
}
