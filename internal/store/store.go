package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rogersnm/taskpad/internal/model"
	"github.com/spf13/afero"
)

var (
	// ErrNoFile is returned by Load when the task file does not exist.
	// The store is left empty.
	ErrNoFile = errors.New("no file found")
	// ErrNoData is returned by Load when the task file is empty.
	ErrNoData = errors.New("no data found")
)

// TaskStore is an ordered, in-memory task list backed by a JSON file.
// Tasks are addressed by their 1-based position.
type TaskStore struct {
	fs    afero.Fs
	tasks []model.Task
}

func New(fs afero.Fs) *TaskStore {
	return &TaskStore{fs: fs, tasks: []model.Task{}}
}

// NewOS returns a TaskStore on the real filesystem.
func NewOS() *TaskStore {
	return New(afero.NewOsFs())
}

func (s *TaskStore) Len() int {
	return len(s.tasks)
}

// Tasks returns a copy of the tasks in stored order.
func (s *TaskStore) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Load replaces the store with the contents of path. ErrNoFile and ErrNoData
// are soft: the store is unchanged and the caller may continue. A malformed
// file returns a *FormatError and also leaves the store unchanged. Due dates
// are not checked here; see InvalidDates.
func (s *TaskStore) Load(path string) error {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNoFile
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrNoData
	}

	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return &FormatError{Path: path, Err: err}
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	s.tasks = tasks
	return nil
}

// InvalidDates returns the 1-based numbers of tasks whose due date is set but
// does not parse. Such tasks are kept as loaded and sort last by due date.
func (s *TaskStore) InvalidDates() []int {
	var out []int
	for i := range s.tasks {
		if s.tasks[i].Validate() != nil {
			out = append(out, i+1)
		}
	}
	return out
}

// Save writes every task to path as a JSON array. The data is written to a
// temporary file in the same directory and renamed over path.
func (s *TaskStore) Save(path string) error {
	data, err := json.MarshalIndent(s.tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling tasks: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := s.fs.Chmod(tmpName, 0644); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := s.fs.Rename(tmpName, path); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
