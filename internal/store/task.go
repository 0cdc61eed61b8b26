package store

import (
	"sort"

	"github.com/rogersnm/taskpad/internal/model"
)

// TaskUpdate holds optional field changes. A nil or empty value keeps the
// existing field.
type TaskUpdate struct {
	Title       *string
	Description *string
	DueDate     *string
	Priority    *string
}

// IsEmpty reports whether the update would change nothing.
func (u TaskUpdate) IsEmpty() bool {
	return blank(u.Title) && blank(u.Description) && blank(u.DueDate) && blank(u.Priority)
}

func blank(s *string) bool {
	return s == nil || *s == ""
}

// Add appends a new open task. dueDate must be YYYY-MM-DD; on a bad date
// nothing is added and a *model.ParseError is returned.
func (s *TaskStore) Add(title, description, dueDate, priority string) error {
	due, err := model.NormalizeDueDate(dueDate)
	if err != nil {
		return err
	}
	s.tasks = append(s.tasks, model.Task{
		Title:       title,
		Description: description,
		DueDate:     due,
		Priority:    priority,
	})
	return nil
}

func (s *TaskStore) Get(index int) (model.Task, error) {
	if err := s.checkIndex(index); err != nil {
		return model.Task{}, err
	}
	return s.tasks[index-1], nil
}

// Update applies upd to the task at index. The due date is validated before
// any field is written, so a failed update leaves the task untouched.
func (s *TaskStore) Update(index int, upd TaskUpdate) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}

	var due string
	if !blank(upd.DueDate) {
		d, err := model.NormalizeDueDate(*upd.DueDate)
		if err != nil {
			return err
		}
		due = d
	}

	t := &s.tasks[index-1]
	if !blank(upd.Title) {
		t.Title = *upd.Title
	}
	if !blank(upd.Description) {
		t.Description = *upd.Description
	}
	if due != "" {
		t.DueDate = due
	}
	if !blank(upd.Priority) {
		t.Priority = *upd.Priority
	}
	return nil
}

// Replace overwrites the task at index wholesale after validating it.
func (s *TaskStore) Replace(index int, t model.Task) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}
	s.tasks[index-1] = t
	return nil
}

// Complete marks the task at index as done. It returns false when the task
// was already completed; that is not an error.
func (s *TaskStore) Complete(index int) (bool, error) {
	if err := s.checkIndex(index); err != nil {
		return false, err
	}
	t := &s.tasks[index-1]
	if t.Completed {
		return false, nil
	}
	t.Completed = true
	return true, nil
}

// Remove deletes and returns the task at index. Remaining tasks keep their
// relative order.
func (s *TaskStore) Remove(index int) (model.Task, error) {
	if err := s.checkIndex(index); err != nil {
		return model.Task{}, err
	}
	t := s.tasks[index-1]
	s.tasks = append(s.tasks[:index-1], s.tasks[index:]...)
	return t, nil
}

// List sorts the stored tasks by key and returns them. The new order is kept:
// task numbers used by later operations refer to it. Use View for a sorted
// copy that leaves the store alone.
func (s *TaskStore) List(key model.SortKey) []model.Task {
	sortTasks(s.tasks, key)
	return s.Tasks()
}

// View returns the tasks sorted by key without reordering the store.
func (s *TaskStore) View(key model.SortKey) []model.Task {
	out := s.Tasks()
	sortTasks(out, key)
	return out
}

func sortTasks(tasks []model.Task, key model.SortKey) {
	switch key {
	case model.SortDueDate:
		sort.SliceStable(tasks, func(i, j int) bool {
			return dueBefore(&tasks[i], &tasks[j])
		})
	case model.SortPriority:
		// Plain string order: "high" < "low" < "medium".
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Priority < tasks[j].Priority
		})
	case model.SortRank:
		sort.SliceStable(tasks, func(i, j int) bool {
			return model.PriorityRank(tasks[i].Priority) < model.PriorityRank(tasks[j].Priority)
		})
	}
}

// dueBefore orders by parsed due date; tasks without one sort last.
func dueBefore(a, b *model.Task) bool {
	da, okA := a.Due()
	db, okB := b.Due()
	switch {
	case okA && okB:
		return da.Before(db)
	case okA:
		return true
	default:
		return false
	}
}
