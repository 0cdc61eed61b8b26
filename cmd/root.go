package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/rogersnm/taskpad/internal/config"
	"github.com/rogersnm/taskpad/internal/logging"
	"github.com/rogersnm/taskpad/internal/repofile"
	"github.com/rogersnm/taskpad/internal/store"
	"github.com/spf13/cobra"
)

const defaultTaskFile = "tasks.json"

var (
	version  = "dev"
	dataDir  string
	taskFile string
	verbose  bool
	cfg      *config.Config
	logger   *log.Logger

	now = time.Now
)

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".taskpad")
	}
	return filepath.Join(home, ".taskpad")
}

var rootCmd = &cobra.Command{
	Use:     "taskpad",
	Short:   "Personal task list stored in a JSON file",
	Long:    "Run without a subcommand to start the interactive menu.",
	Version: version,
	Args:    cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.New(cmd.ErrOrStderr(), logging.Options{Verbose: verbose})

		var err error
		cfg, err = config.Load(dataDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir(), "config directory path")
	rootCmd.PersistentFlags().StringVarP(&taskFile, "file", "f", "", "task file (default: repo link, config default_file, or ./tasks.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	mtpOpts := &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"add": {
				Examples: []mtp.Example{
					{Description: "Add a task", Command: "taskpad add \"Pay bills\" --due 2025-01-15 --priority high"},
					{Description: "Add a task with a description", Command: "taskpad add \"Dentist\" --due 2025-02-03 -d \"Bring insurance card\""},
				},
			},
			"update": {
				Examples: []mtp.Example{
					{Description: "Change a task's due date", Command: "taskpad update 2 --due 2025-03-01"},
					{Description: "Rename a task", Command: "taskpad update 1 --title \"Pay all bills\""},
				},
			},
			"complete": {
				Examples: []mtp.Example{
					{Description: "Mark task 1 as complete", Command: "taskpad complete 1"},
				},
			},
			"remove": {
				Examples: []mtp.Example{
					{Description: "Remove a task (interactive confirm)", Command: "taskpad remove 3"},
					{Description: "Remove a task (skip confirm)", Command: "taskpad remove 3 --force"},
				},
			},
			"list": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Table of tasks with number, title, due date, priority, and completion",
				},
				Examples: []mtp.Example{
					{Description: "List tasks by due date", Command: "taskpad list --sort due"},
					{Description: "Sort by priority and keep the new order", Command: "taskpad list --sort priority --persist"},
				},
			},
			"show": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/markdown",
					Description: "Task as YAML frontmatter with the description as body",
				},
				Examples: []mtp.Example{
					{Description: "Show task 1", Command: "taskpad show 1"},
				},
			},
			"search": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Matching task numbers and titles with description snippets",
				},
				Examples: []mtp.Example{
					{Description: "Search titles and descriptions", Command: "taskpad search bills"},
				},
			},
			"repo init": {
				Examples: []mtp.Example{
					{Description: "Use a task file for this directory tree", Command: "taskpad repo init tasks.json"},
				},
			},
		},
	}

	mtp.WithDescribe(rootCmd, mtpOpts)
}

func Execute() error {
	return rootCmd.Execute()
}

// resolveTaskFile returns the task file from the flag, repo-local link,
// config default, or ./tasks.json, in that order.
func resolveTaskFile() string {
	if taskFile != "" {
		return taskFile
	}
	if cwd, err := os.Getwd(); err == nil {
		if f, _, _ := repofile.Find(cwd); f != "" {
			return f
		}
	}
	if cfg != nil && cfg.DefaultFile != "" {
		return cfg.DefaultFile
	}
	return defaultTaskFile
}

// loadStore reads the task file. A missing or empty file is reported and
// yields an empty store; anything else is returned.
func loadStore(path string) (*store.TaskStore, error) {
	st := store.NewOS()
	err := st.Load(path)
	switch {
	case err == nil:
		logger.Debug("loaded tasks", "path", path, "count", st.Len())
		for _, n := range st.InvalidDates() {
			t, _ := st.Get(n)
			logger.Warn("Task has an invalid due date; it sorts last until fixed.", "task", n, "due_date", t.DueDate)
		}
		return st, nil
	case errors.Is(err, store.ErrNoFile):
		logger.Warn("No file found. Starting with an empty task list.", "path", path)
		return st, nil
	case errors.Is(err, store.ErrNoData):
		logger.Warn("No data found in the file.", "path", path)
		return st, nil
	default:
		return st, err
	}
}

// withStore loads the task file, runs fn, and saves when fn reports a change.
func withStore(fn func(st *store.TaskStore) (bool, error)) error {
	path := resolveTaskFile()
	st, err := loadStore(path)
	if err != nil {
		return err
	}
	changed, err := fn(st)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if err := st.Save(path); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	logger.Debug("saved tasks", "path", path, "count", st.Len())
	return nil
}
