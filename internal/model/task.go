package model

import (
	"fmt"
	"time"
)

// DateLayout is the on-disk and user-facing due date format.
const DateLayout = "2006-01-02"

type Task struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"-"`
	DueDate     string `json:"due_date" yaml:"due_date"`
	Priority    string `json:"priority" yaml:"priority"`
	Completed   bool   `json:"completed" yaml:"completed"`
}

// ParseError reports a due date that is not a YYYY-MM-DD calendar date.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid due date %q: use YYYY-MM-DD", e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseDueDate parses s as a calendar date. Surrounding whitespace is not
// tolerated, matching the stored form exactly.
func ParseDueDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &ParseError{Value: s, Err: err}
	}
	return d, nil
}

// NormalizeDueDate parses s and returns its canonical ISO form.
func NormalizeDueDate(s string) (string, error) {
	d, err := ParseDueDate(s)
	if err != nil {
		return "", err
	}
	return d.Format(DateLayout), nil
}

// Validate checks the due date. An empty one is allowed; a present one must
// parse.
func (t *Task) Validate() error {
	if t.DueDate == "" {
		return nil
	}
	_, err := ParseDueDate(t.DueDate)
	return err
}

// Due returns the parsed due date and whether the task has one.
func (t *Task) Due() (time.Time, bool) {
	if t.DueDate == "" {
		return time.Time{}, false
	}
	d, err := ParseDueDate(t.DueDate)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// IsOverdue returns true if the task is open and its due date is before today.
func (t *Task) IsOverdue(today time.Time) bool {
	if t.Completed {
		return false
	}
	d, ok := t.Due()
	if !ok {
		return false
	}
	y, m, day := today.Date()
	return d.Before(time.Date(y, m, day, 0, 0, 0, 0, time.UTC))
}
