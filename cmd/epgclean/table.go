// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// report is a console table. Columns listed in numeric are right-aligned.
type report struct {
	title   string
	headers []string
	rows    [][]string
	numeric []int // 0-based column indexes
	footer  []string
}

func (r report) render() string {
	if len(r.headers) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if r.title != "" {
		tw.SetTitle(r.title)
	}
	tw.AppendHeader(toRow(r.headers, len(r.headers)))
	for _, row := range r.rows {
		tw.AppendRow(toRow(row, len(r.headers)))
	}
	if len(r.footer) > 0 {
		tw.AppendFooter(toRow(r.footer, len(r.headers)))
	}

	configs := make([]table.ColumnConfig, 0, len(r.numeric))
	for _, col := range r.numeric {
		configs = append(configs, table.ColumnConfig{
			Number:      col + 1,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
			AlignFooter: text.AlignRight,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// toRow pads or truncates cells to width columns.
func toRow(cells []string, width int) table.Row {
	row := make(table.Row, width)
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = ""
		}
	}
	return row
}
