// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package blog

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

const utf8BOM = "\uFEFF"

// ParseCSV decodes a spreadsheet export into posts, in file order.
//
// Headers are matched case-insensitively after trimming. Unknown columns are
// ignored and short rows leave the missing fields empty. Rows whose cells are
// all blank are skipped. The header must name at least id and title.
func ParseCSV(r io.Reader) ([]Post, error) {
	br := bufio.NewReader(r)
	if peek, err := br.Peek(len(utf8BOM)); err == nil && string(peek) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var header []string
	for header == nil {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRows
		}
		if err != nil {
			return nil, fmt.Errorf("read csv header: %w", err)
		}
		if !blankRecord(rec) {
			header = rec
		}
	}

	idx := columnIndex(header)
	if idx["id"] < 0 || idx["title"] < 0 {
		return nil, fmt.Errorf("%w: header %q", ErrMissingColumns, strings.Join(header, ","))
	}

	var posts []Post
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		if blankRecord(rec) {
			continue
		}
		posts = append(posts, Post{
			ID:       field(rec, idx["id"]),
			Title:    field(rec, idx["title"]),
			Excerpt:  field(rec, idx["excerpt"]),
			Content:  field(rec, idx["content"]),
			Date:     field(rec, idx["date"]),
			Image:    field(rec, idx["image"]),
			Category: field(rec, idx["category"]),
			Author:   field(rec, idx["author"]),
		})
	}

	if len(posts) == 0 {
		return nil, ErrNoRows
	}
	return posts, nil
}

var knownColumns = []string{"id", "title", "excerpt", "content", "date", "image", "category", "author"}

// columnIndex maps each known column to its position, -1 when absent. The
// first occurrence of a duplicated header wins.
func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(knownColumns))
	for _, c := range knownColumns {
		idx[c] = -1
	}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if pos, ok := idx[name]; ok && pos < 0 {
			idx[name] = i
		}
	}
	return idx
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func blankRecord(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
