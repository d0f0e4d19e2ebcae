// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package blog

import (
	"strings"

	"golang.org/x/text/cases"
)

// CategoryAll disables the category constraint.
const CategoryAll = "Todos"

// Query narrows a post list.
type Query struct {
	Search   string
	Category string
}

// FilterPosts keeps the posts whose title or excerpt contains Search
// (case-insensitively) and whose category equals Category. Order is kept.
func FilterPosts(posts []Post, q Query) []Post {
	// Casers are stateful, one per call.
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(q.Search))
	category := strings.TrimSpace(q.Category)

	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(fold.String(p.Title), needle) &&
			!strings.Contains(fold.String(p.Excerpt), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories returns CategoryAll followed by each distinct non-empty category
// in order of first appearance.
func Categories(posts []Post) []string {
	out := []string{CategoryAll}
	seen := map[string]bool{CategoryAll: true}
	for _, p := range posts {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}
