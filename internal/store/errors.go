package store

import (
	"fmt"
	"strconv"
	"strings"
)

// IndexError reports a task number that is not numeric or is outside [1, Len].
type IndexError struct {
	Input     string
	NotNumber bool
	Index     int
	Len       int
}

func (e *IndexError) Error() string {
	if e.NotNumber {
		return fmt.Sprintf("invalid task number %q: enter a number", e.Input)
	}
	if e.Len == 0 {
		return fmt.Sprintf("invalid task number %d: no tasks", e.Index)
	}
	return fmt.Sprintf("invalid task number %d: must be between 1 and %d", e.Index, e.Len)
}

// FormatError reports a task file that could not be decoded.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ParseIndex parses a user-supplied task number. It validates the syntax only;
// range checks happen when the index is used.
func ParseIndex(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &IndexError{Input: s, NotNumber: true}
	}
	return n, nil
}

func (s *TaskStore) checkIndex(index int) error {
	if index < 1 || index > len(s.tasks) {
		return &IndexError{Index: index, Len: len(s.tasks)}
	}
	return nil
}
