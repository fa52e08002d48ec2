// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package httpx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	xglog "github.com/arah91-bit/my-epg-automation/internal/log"
)

const (
	// MaxBodyBytes caps a single playlist download.
	MaxBodyBytes = 64 << 20

	defaultRetryDelay = 500 * time.Millisecond
)

// StatusError is returned when a server answers with a non-2xx status.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// Temporary reports whether retrying the request may succeed.
func (e *StatusError) Temporary() bool {
	return e.Code >= 500 || e.Code == http.StatusTooManyRequests || e.Code == http.StatusRequestTimeout
}

// ErrBodyTooLarge is returned when a download exceeds MaxBodyBytes.
var ErrBodyTooLarge = errors.New("response body exceeds size limit")

// Downloader fetches playlist text from http(s) URLs, file:// URLs or local paths.
type Downloader struct {
	client    *http.Client
	retries   uint
	delay     time.Duration
	userAgent string
	logger    zerolog.Logger
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithRetries sets how many times a failed HTTP request is retried.
func WithRetries(n int) Option {
	return func(d *Downloader) {
		if n >= 0 {
			d.retries = uint(n)
		}
	}
}

// WithRetryDelay sets the base backoff delay between attempts.
func WithRetryDelay(delay time.Duration) Option {
	return func(d *Downloader) { d.delay = delay }
}

// WithUserAgent sets the User-Agent header for HTTP requests.
func WithUserAgent(ua string) Option {
	return func(d *Downloader) { d.userAgent = ua }
}

// WithLogger replaces the component logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Downloader) { d.logger = logger }
}

// NewDownloader returns a Downloader using client, or NewClient(0) when client is nil.
func NewDownloader(client *http.Client, opts ...Option) *Downloader {
	if client == nil {
		client = NewClient(0)
	}
	d := &Downloader{
		client:    client,
		retries:   2,
		delay:     defaultRetryDelay,
		userAgent: "epgclean",
		logger:    xglog.WithComponent("download"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// FetchText returns the decoded text behind src. A UTF-8 byte order mark is dropped and
// UTF-16 content with a BOM is converted to UTF-8.
func (d *Downloader) FetchText(ctx context.Context, src string) (string, error) {
	src = strings.TrimSpace(src)
	var (
		body []byte
		err  error
	)
	switch {
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		body, err = d.fetchHTTP(ctx, src)
	case strings.HasPrefix(src, "file://"):
		u, perr := url.Parse(src)
		if perr != nil {
			return "", fmt.Errorf("parse %s: %w", src, perr)
		}
		body, err = readFile(u.Path)
	default:
		body, err = readFile(src)
	}
	if err != nil {
		return "", err
	}
	return decodeText(body)
}

func (d *Downloader) fetchHTTP(ctx context.Context, rawURL string) ([]byte, error) {
	return retry.DoWithData(
		func() ([]byte, error) { return d.get(ctx, rawURL) },
		retry.Context(ctx),
		retry.Attempts(d.retries+1),
		retry.Delay(d.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(retryable),
		retry.OnRetry(func(n uint, err error) {
			d.logger.Debug().
				Err(err).
				Str(xglog.FieldURL, rawURL).
				Uint("attempt", n+1).
				Msg("retrying download")
		}),
	)
}

func (d *Downloader) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("build request: %w", err))
	}
	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{URL: rawURL, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rawURL, err)
	}
	if len(body) > MaxBodyBytes {
		return nil, retry.Unrecoverable(fmt.Errorf("GET %s: %w", rawURL, ErrBodyTooLarge))
	}
	return body, nil
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Temporary()
	}
	return true
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if info.Size() > MaxBodyBytes {
		return nil, fmt.Errorf("read %s: %w", path, ErrBodyTooLarge)
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return body, nil
}

func decodeText(body []byte) (string, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), body)
	if err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}
	return string(out), nil
}
