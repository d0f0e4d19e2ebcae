// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ids(posts []Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterPosts(t *testing.T) {
	posts := FallbackPosts()

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{name: "no constraints", query: Query{}, want: []string{"1", "2", "3"}},
		{name: "todos", query: Query{Category: CategoryAll}, want: []string{"1", "2", "3"}},
		{name: "title search ignores case", query: Query{Search: "LED"}, want: []string{"2"}},
		{name: "accented search", query: Query{Search: "ILUMINACIÓN"}, want: []string{"2"}},
		{name: "excerpt search", query: Query{Search: "tormentas"}, want: []string{"3"}},
		{name: "category", query: Query{Category: "Ahorro"}, want: []string{"2"}},
		{name: "category is exact", query: Query{Category: "ahorro"}, want: []string{}},
		{name: "both", query: Query{Search: "cable", Category: "Tutoriales"}, want: []string{"1"}},
		{name: "both no match", query: Query{Search: "cable", Category: "Seguridad"}, want: []string{}},
		{name: "whitespace search", query: Query{Search: "   "}, want: []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterPosts(posts, tt.query)))
		})
	}
}

func TestCategories(t *testing.T) {
	posts := []Post{
		{ID: "1", Category: "B"},
		{ID: "2", Category: "A"},
		{ID: "3", Category: "B"},
		{ID: "4"},
	}
	assert.Equal(t, []string{"Todos", "B", "A"}, Categories(posts))
	assert.Equal(t, []string{"Todos"}, Categories(nil))
}
