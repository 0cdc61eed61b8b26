package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rogersnm/taskpad/internal/editor"
	"github.com/rogersnm/taskpad/internal/model"
	"github.com/rogersnm/taskpad/internal/render"
	"github.com/rogersnm/taskpad/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		desc, _ := cmd.Flags().GetString("description")
		due, _ := cmd.Flags().GetString("due")
		priority, _ := cmd.Flags().GetString("priority")
		warnPriority(priority)

		return withStore(func(st *store.TaskStore) (bool, error) {
			if err := st.Add(args[0], desc, due, priority); err != nil {
				return false, err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %d: %s\n", st.Len(), args[0])
			return true, nil
		})
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <number>",
	Short: "Update a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := store.ParseIndex(args[0])
		if err != nil {
			return err
		}

		upd := store.TaskUpdate{}
		for flag, field := range map[string]**string{
			"title":       &upd.Title,
			"description": &upd.Description,
			"due":         &upd.DueDate,
			"priority":    &upd.Priority,
		} {
			if cmd.Flags().Changed(flag) {
				v, _ := cmd.Flags().GetString(flag)
				*field = &v
			}
		}
		if upd.Priority != nil {
			warnPriority(*upd.Priority)
		}
		if upd.IsEmpty() {
			return fmt.Errorf("at least one non-empty update flag is required (--title, --description, --due, --priority)")
		}

		return withStore(func(st *store.TaskStore) (bool, error) {
			if err := st.Update(index, upd); err != nil {
				return false, err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %d\n", index)
			return true, nil
		})
	},
}

var completeCmd = &cobra.Command{
	Use:   "complete <number>",
	Short: "Mark a task as complete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := store.ParseIndex(args[0])
		if err != nil {
			return err
		}
		return withStore(func(st *store.TaskStore) (bool, error) {
			changed, err := st.Complete(index)
			if err != nil {
				return false, err
			}
			if !changed {
				fmt.Fprintf(cmd.OutOrStdout(), "Task %d is already marked as complete.\n", index)
				return false, nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed task %d\n", index)
			return true, nil
		})
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <number>",
	Short: "Remove a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := store.ParseIndex(args[0])
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")

		return withStore(func(st *store.TaskStore) (bool, error) {
			t, err := st.Get(index)
			if err != nil {
				return false, err
			}
			if !force {
				if err := confirmRemove(t); err != nil {
					return false, err
				}
			}
			if _, err := st.Remove(index); err != nil {
				return false, err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task '%s'\n", t.Title)
			return true, nil
		})
	},
}

func confirmRemove(t model.Task) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("refusing to remove task %q without a terminal: pass --force", t.Title)
	}
	var confirm bool
	msg := fmt.Sprintf("Remove task %q (due %s)?", t.Title, render.RenderDue(t.DueDate))
	if err := huh.NewConfirm().Title(msg).Value(&confirm).Run(); err != nil || !confirm {
		return fmt.Errorf("removal cancelled")
	}
	return nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sortStr, _ := cmd.Flags().GetString("sort")
		if !cmd.Flags().Changed("sort") && cfg != nil {
			sortStr = cfg.DefaultSort
		}
		key, err := model.ParseSortKey(sortStr)
		if err != nil {
			return err
		}
		persist, _ := cmd.Flags().GetBool("persist")

		return withStore(func(st *store.TaskStore) (bool, error) {
			var tasks []model.Task
			if persist {
				tasks = st.List(key)
			} else {
				tasks = st.View(key)
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.RenderTaskTable(tasks, now()))
			return persist && key != model.SortNone, nil
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show <number>",
	Short: "Show task details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := store.ParseIndex(args[0])
		if err != nil {
			return err
		}
		pretty, _ := cmd.Flags().GetBool("pretty")

		return withStore(func(st *store.TaskStore) (bool, error) {
			t, err := st.Get(index)
			if err != nil {
				return false, err
			}
			out := cmd.OutOrStdout()

			if !pretty {
				data, err := render.MarshalTask(t)
				if err != nil {
					return false, err
				}
				fmt.Fprint(out, string(data))
				return false, nil
			}

			fields := []string{
				render.RenderField("Number", fmt.Sprint(index)),
				render.RenderField("Due", render.RenderDue(t.DueDate)),
				render.RenderField("Priority", render.RenderPriority(t.Priority)),
				render.RenderField("Completed", render.RenderCompleted(t.Completed, t.IsOverdue(now()))),
			}
			fmt.Fprint(out, render.RenderEntityHeader(t.Title, fields))
			if t.Description != "" {
				rendered, err := render.RenderMarkdown(t.Description)
				if err != nil {
					return false, err
				}
				fmt.Fprint(out, rendered)
			}
			return false, nil
		})
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <number>",
	Short: "Edit a task in $EDITOR",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := store.ParseIndex(args[0])
		if err != nil {
			return err
		}
		return withStore(func(st *store.TaskStore) (bool, error) {
			t, err := st.Get(index)
			if err != nil {
				return false, err
			}
			before, err := render.MarshalTask(t)
			if err != nil {
				return false, err
			}
			after, err := editor.Edit(before, "taskpad-*.md")
			if err != nil {
				return false, err
			}
			if bytes.Equal(before, after) {
				fmt.Fprintln(cmd.OutOrStdout(), "No changes.")
				return false, nil
			}
			edited, err := render.ParseTask(bytes.NewReader(after))
			if err != nil {
				return false, err
			}
			if err := st.Replace(index, edited); err != nil {
				return false, err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %d\n", index)
			return true, nil
		})
	},
}

// warnPriority notes free-text priorities; they are kept but rank last.
func warnPriority(p string) {
	if p != "" && !model.IsKnownPriority(p) {
		logger.Warn("Unrecognized priority, rank sort will place it last.", "priority", p)
	}
}

// describeError turns store errors into the short messages shown to users.
func describeError(err error) string {
	var pe *model.ParseError
	var ie *store.IndexError
	switch {
	case errors.As(err, &pe):
		return "Invalid date format. Please use YYYY-MM-DD."
	case errors.As(err, &ie) && ie.NotNumber:
		return "Invalid input. Please enter a valid task number."
	case errors.As(err, &ie):
		return "Invalid task number."
	default:
		return strings.TrimSpace(err.Error())
	}
}

func init() {
	addCmd.Flags().StringP("description", "d", "", "task description")
	addCmd.Flags().String("due", "", "due date (YYYY-MM-DD)")
	addCmd.Flags().StringP("priority", "p", "", "priority (low, medium, high)")
	addCmd.MarkFlagRequired("due")

	updateCmd.Flags().String("title", "", "new title")
	updateCmd.Flags().StringP("description", "d", "", "new description")
	updateCmd.Flags().String("due", "", "new due date (YYYY-MM-DD)")
	updateCmd.Flags().StringP("priority", "p", "", "new priority (low, medium, high)")

	removeCmd.Flags().Bool("force", false, "skip confirmation")

	listCmd.Flags().StringP("sort", "s", "", "sort key (none, due, priority, rank)")
	listCmd.Flags().Bool("persist", false, "save the sorted order to the task file")

	showCmd.Flags().Bool("pretty", false, "render with ANSI styling")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
}
