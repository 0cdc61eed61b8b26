package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDueDate_Valid(t *testing.T) {
	d, err := ParseDueDate("2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), d)
}

func TestParseDueDate_Malformed(t *testing.T) {
	for _, s := range []string{"", "tomorrow", "2025/01/15", "15-01-2025", "2025-1-5", "2025-02-30", "2025-13-01", " 2025-01-15"} {
		_, err := ParseDueDate(s)
		var pe *ParseError
		require.True(t, errors.As(err, &pe), "input %q", s)
		assert.Equal(t, s, pe.Value)
	}
}

func TestParseDueDate_LeapDay(t *testing.T) {
	_, err := ParseDueDate("2024-02-29")
	assert.NoError(t, err)
	_, err = ParseDueDate("2025-02-29")
	assert.Error(t, err)
}

func TestParseError_Message(t *testing.T) {
	_, err := ParseDueDate("soon")
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestTask_Validate_EmptyDueDate(t *testing.T) {
	task := &Task{Title: "Loaded"}
	assert.NoError(t, task.Validate())
}

func TestTask_Validate_BadDueDate(t *testing.T) {
	task := &Task{Title: "Loaded", DueDate: "someday"}
	assert.Error(t, task.Validate())
}

func TestTask_Due(t *testing.T) {
	task := &Task{DueDate: "2025-03-01"}
	d, ok := task.Due()
	require.True(t, ok)
	assert.Equal(t, time.March, d.Month())

	_, ok = (&Task{}).Due()
	assert.False(t, ok)
}

func TestTask_IsOverdue(t *testing.T) {
	today := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
	assert.True(t, (&Task{DueDate: "2025-05-31"}).IsOverdue(today))
	assert.False(t, (&Task{DueDate: "2025-06-01"}).IsOverdue(today))
	assert.False(t, (&Task{DueDate: "2025-05-31", Completed: true}).IsOverdue(today))
	assert.False(t, (&Task{}).IsOverdue(today))
}

func TestPriorityRank(t *testing.T) {
	assert.Less(t, PriorityRank("high"), PriorityRank("medium"))
	assert.Less(t, PriorityRank("medium"), PriorityRank("low"))
	assert.Less(t, PriorityRank("low"), PriorityRank("urgent"))
	assert.Equal(t, PriorityRank("high"), PriorityRank(" HIGH "))
}

func TestIsKnownPriority(t *testing.T) {
	assert.True(t, IsKnownPriority("Medium"))
	assert.False(t, IsKnownPriority(""))
	assert.False(t, IsKnownPriority("p1"))
}

func TestParseSortKey(t *testing.T) {
	cases := map[string]SortKey{
		"":         SortNone,
		"none":     SortNone,
		"due":      SortDueDate,
		"due_date": SortDueDate,
		"priority": SortPriority,
		"rank":     SortRank,
	}
	for in, want := range cases {
		got, err := ParseSortKey(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSortKey("title")
	assert.Error(t, err)
}
