// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package playlist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	headerTag = "#EXTM3U"
	extinfTag = "#EXTINF:"
)

// Parse extracts records from playlist text. See ParseReader.
func Parse(text string) ([]*Record, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseReader extracts records from a playlist. A record is an #EXTINF line immediately
// followed by a line starting with "http"; anything else is ignored. A UTF-8 byte order
// mark is dropped and UTF-16 input with a BOM is decoded. Lines have no length limit,
// since descriptors may embed data URIs. On error the records read so far are returned.
func ParseReader(r io.Reader) ([]*Record, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	br := bufio.NewReader(decoded)

	var (
		records []*Record
		prev    string
	)
	for {
		raw, err := br.ReadString('\n')
		if raw != "" {
			line := strings.TrimSpace(raw)
			if strings.HasPrefix(prev, extinfTag) && strings.HasPrefix(line, "http") {
				records = append(records, NewRecord(prev, line))
			}
			prev = line
		}
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, fmt.Errorf("read playlist: %w", err)
		}
	}
}

// WriteM3U writes the records as an extended M3U playlist, descriptor line then URL line.
func WriteM3U(w io.Writer, records []*Record) error {
	buf := &bytes.Buffer{}
	buf.WriteString(headerTag + "\n")
	for _, rec := range records {
		buf.WriteString(rec.Descriptor() + "\n")
		buf.WriteString(rec.URL() + "\n")
	}
	_, err := io.Copy(w, buf)
	return err
}
