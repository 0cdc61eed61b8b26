package store

import (
	"strings"
)

type SearchResult struct {
	Index   int
	Title   string
	Snippet string
}

// Search returns tasks whose title or description contains query,
// case-insensitively, in stored order.
func (s *TaskStore) Search(query string) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var results []SearchResult
	for i, t := range s.tasks {
		switch {
		case matchesQuery(q, t.Title):
			results = append(results, SearchResult{Index: i + 1, Title: t.Title})
		case matchesQuery(q, t.Description):
			results = append(results, SearchResult{
				Index: i + 1, Title: t.Title,
				Snippet: snippet(t.Description, q),
			})
		}
	}
	return results
}

func matchesQuery(q, text string) bool {
	return strings.Contains(strings.ToLower(text), q)
}

func snippet(body, query string) string {
	lower := strings.ToLower(body)
	idx := strings.Index(lower, query)
	if idx < 0 || idx > len(body) {
		return ""
	}
	start := max(idx-40, 0)
	end := min(idx+len(query)+40, len(body))
	s := body[start:end]
	if start > 0 {
		s = "..." + s
	}
	if end < len(body) {
		s = s + "..."
	}
	return strings.ReplaceAll(s, "\n", " ")
}
