package model

import "fmt"

type SortKey string

const (
	SortNone     SortKey = "none"
	SortDueDate  SortKey = "due"
	SortPriority SortKey = "priority"
	SortRank     SortKey = "rank"
)

var validSortKeys = []SortKey{SortNone, SortDueDate, SortPriority, SortRank}

// ParseSortKey maps user input to a SortKey. The empty string is SortNone.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortNone, nil
	}
	switch s {
	case "due_date", "date":
		return SortDueDate, nil
	}
	for _, k := range validSortKeys {
		if SortKey(s) == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q: must be one of none, due, priority, rank", s)
}
