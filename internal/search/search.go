// Package search implements the single matching contract shared by the
// repository-backed search route and the client-side instant search box, so a
// query yields the same result set regardless of which path served it.
package search

import (
	"strings"

	"github.com/psaswat/testyourmodels/internal/models"
)

// Matches reports whether the lowercased query is a substring of the post's
// title, summary, content or category.
func Matches(post models.Post, query string) bool {
	term := strings.ToLower(query)
	return strings.Contains(strings.ToLower(post.Title), term) ||
		strings.Contains(strings.ToLower(post.Summary), term) ||
		strings.Contains(strings.ToLower(post.Content), term) ||
		strings.Contains(strings.ToLower(post.Category), term)
}

// Filter returns the posts matching query, preserving corpus order. An empty
// or whitespace-only query yields an empty result set, not the full corpus,
// so the UI can tell "no query yet" apart from "no matches".
func Filter(query string, corpus []models.Post) []models.Post {
	if strings.TrimSpace(query) == "" {
		return []models.Post{}
	}

	results := []models.Post{}
	for _, post := range corpus {
		if Matches(post, query) {
			results = append(results, post)
		}
	}
	return results
}
