package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/rogersnm/taskpad/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(in ...string) string {
	return strings.Join(in, "\n") + "\n"
}

func TestMenu_AddAndSave(t *testing.T) {
	env := setupEnv(t)
	out, stderr, err := env.run(t, lines("1", "Pay bills", "", "2025-01-15", "high", "6"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "No file found")
	assert.Contains(t, out, "Task added successfully!")
	assert.Contains(t, out, "Tasks saved. Exiting.")

	tasks := env.tasks(t)
	require.Len(t, tasks, 1)
	assert.Equal(t, "2025-01-15", tasks[0].DueDate)
	assert.False(t, tasks[0].Completed)
}

func TestMenu_MenuSubcommand(t *testing.T) {
	env := setupEnv(t)
	out, _, err := env.run(t, lines("6"), "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Tasks saved. Exiting.")
	assert.Empty(t, env.tasks(t))
}

func TestMenu_AddBadDate(t *testing.T) {
	env := setupEnv(t)
	out, _, err := env.run(t, lines("1", "Pay bills", "", "15/01/2025", "high", "6"))
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid date format. Please use YYYY-MM-DD.")
	assert.Empty(t, env.tasks(t))
}

func TestMenu_InvalidChoiceReprompts(t *testing.T) {
	env := setupEnv(t)
	out, _, err := env.run(t, lines("9", "abc", "6"))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Invalid choice. Please try again."))
	assert.Contains(t, out, "Tasks saved. Exiting.")
}

func TestMenu_InputClosedDoesNotSave(t *testing.T) {
	env := setupEnv(t)
	_, _, err := env.run(t, lines("1", "Pay bills"))
	assert.ErrorIs(t, err, errInputClosed)
	assert.NoFileExists(t, env.file)
}

func TestMenu_DisplaySortPersistsOnSave(t *testing.T) {
	env := setupEnv(t)
	env.seed(t,
		model.Task{Title: "March", DueDate: "2025-03-01"},
		model.Task{Title: "Jan", DueDate: "2025-01-01"},
	)

	out, _, err := env.run(t, lines("5", "1", "6"))
	require.NoError(t, err)
	assert.Contains(t, out, "Task List:")
	assert.Equal(t, []string{"Jan", "March"}, taskTitles(env.tasks(t)))
}

func TestMenu_DisplayEmpty(t *testing.T) {
	env := setupEnv(t)
	out, _, err := env.run(t, lines("5", "6"))
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks found.")
	assert.NotContains(t, out, "Sort Options:")
}

func TestMenu_Update(t *testing.T) {
	env := setupEnv(t)
	env.seed(t, model.Task{Title: "Old", Description: "keep", DueDate: "2025-01-01", Priority: "low"})

	out, _, err := env.run(t, lines("2", "3", "1", "New", "", "2025-05-05", "", "6"))
	require.NoError(t, err)
	assert.Contains(t, out, "Selected Task: Old - keep")
	assert.Contains(t, out, "Task updated successfully!")

	got := env.tasks(t)[0]
	assert.Equal(t, model.Task{Title: "New", Description: "keep", DueDate: "2025-05-05", Priority: "low"}, got)
}

func TestMenu_UpdateBadDateLeavesTask(t *testing.T) {
	env := setupEnv(t)
	env.seed(t, model.Task{Title: "Old", DueDate: "2025-01-01", Priority: "low"})

	out, _, err := env.run(t, lines("2", "3", "1", "New", "", "bad", "high", "6"))
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid date format")
	assert.Contains(t, out, "No task updated.")

	got := env.tasks(t)[0]
	assert.Equal(t, "Old", got.Title)
	assert.Equal(t, "low", got.Priority)
}

func TestMenu_UpdateOutOfRange(t *testing.T) {
	env := setupEnv(t)
	env.seed(t, model.Task{Title: "A", DueDate: "2025-01-01"})

	out, _, err := env.run(t, lines("2", "3", "4", "6"))
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid task number. No task updated.")
	assert.NotContains(t, out, "Selected Task")
}

func TestMenu_CompleteTwice(t *testing.T) {
	env := setupEnv(t)
	env.seed(t, model.Task{Title: "A", DueDate: "2025-01-01"})

	out, _, err := env.run(t, lines("3", "3", "1", "3", "3", "1", "6"))
	require.NoError(t, err)
	assert.Contains(t, out, "Task marked as complete!")
	assert.Contains(t, out, "Task is already marked as complete.")
	assert.True(t, env.tasks(t)[0].Completed)
}

func TestMenu_RemoveNotANumber(t *testing.T) {
	env := setupEnv(t)
	env.seed(t, model.Task{Title: "A", DueDate: "2025-01-01"})

	out, _, err := env.run(t, lines("4", "3", "abc", "6"))
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid input. Please enter a valid task number.")
	assert.Len(t, env.tasks(t), 1)
}

func TestMenu_Remove(t *testing.T) {
	env := setupEnv(t)
	env.seed(t,
		model.Task{Title: "A", DueDate: "2025-01-01"},
		model.Task{Title: "B", DueDate: "2025-01-02"},
	)

	out, _, err := env.run(t, lines("4", "3", "1", "6"))
	require.NoError(t, err)
	assert.Contains(t, out, "Task 'A' removed successfully!")
	assert.Equal(t, []string{"B"}, taskTitles(env.tasks(t)))
}

func TestMenu_EmptyFileReported(t *testing.T) {
	env := setupEnv(t)
	require.NoError(t, os.WriteFile(env.file, nil, 0644))

	_, stderr, err := env.run(t, lines("6"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "No data found")
}

func TestMenu_MalformedFileContinues(t *testing.T) {
	env := setupEnv(t)
	require.NoError(t, os.WriteFile(env.file, []byte("{not json"), 0644))

	out, stderr, err := env.run(t, lines("1", "A", "", "2025-01-01", "low", "6"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "Error decoding JSON")
	assert.Contains(t, out, "Task added successfully!")
	assert.Equal(t, []string{"A"}, taskTitles(env.tasks(t)))
}

func TestMenu_InvalidDueDateKeepsTasks(t *testing.T) {
	env := setupEnv(t)
	require.NoError(t, os.WriteFile(env.file,
		[]byte(`[{"title":"keep me","due_date":"2025-01-01"},{"title":"typo","due_date":"2025-13-01"}]`), 0644))

	_, stderr, err := env.run(t, lines("6"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "invalid due date")
	assert.NotContains(t, stderr, "Error decoding JSON")

	tasks := env.tasks(t)
	assert.Equal(t, []string{"keep me", "typo"}, taskTitles(tasks))
	assert.Equal(t, "2025-13-01", tasks[1].DueDate)
}
