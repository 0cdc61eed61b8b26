package model

import "strings"

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

var priorityRanks = map[string]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// PriorityRank orders the documented priorities high, medium, low.
// Anything else ranks after them. Matching is case-insensitive.
func PriorityRank(p string) int {
	if r, ok := priorityRanks[strings.ToLower(strings.TrimSpace(p))]; ok {
		return r
	}
	return len(priorityRanks)
}

// IsKnownPriority reports whether p is one of low, medium or high.
func IsKnownPriority(p string) bool {
	_, ok := priorityRanks[strings.ToLower(strings.TrimSpace(p))]
	return ok
}
