package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rogersnm/taskpad/internal/model"
	"github.com/rogersnm/taskpad/internal/render"
	"github.com/rogersnm/taskpad/internal/store"
	"github.com/spf13/cobra"
)

var errInputClosed = errors.New("input closed before save; changes were not written")

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu (default)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd)
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runInteractive(cmd *cobra.Command) error {
	path := resolveTaskFile()
	st, err := loadStore(path)
	if err != nil {
		var fe *store.FormatError
		if !errors.As(err, &fe) {
			return err
		}
		logger.Error("Error decoding JSON.", "path", path, "err", fe.Err)
	}
	m := &menu{
		in:   bufio.NewScanner(cmd.InOrStdin()),
		out:  cmd.OutOrStdout(),
		st:   st,
		path: path,
	}
	return m.run()
}

// menu is the line-oriented prompt loop. Every action error is reported and
// the loop continues; only a failed save or closed input ends it with an error.
type menu struct {
	in   *bufio.Scanner
	out  io.Writer
	st   *store.TaskStore
	path string
}

func (m *menu) run() error {
	for {
		fmt.Fprintln(m.out, "\nOptions:")
		fmt.Fprintln(m.out, "1. Add Task")
		fmt.Fprintln(m.out, "2. Update Task")
		fmt.Fprintln(m.out, "3. Mark Task as Complete")
		fmt.Fprintln(m.out, "4. Remove Task")
		fmt.Fprintln(m.out, "5. Display Tasks")
		fmt.Fprintln(m.out, "6. Save and Exit")

		choice, err := m.prompt("Enter your choice (1/2/3/4/5/6): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = m.add()
		case "2":
			err = m.update()
		case "3":
			err = m.complete()
		case "4":
			err = m.remove()
		case "5":
			_, err = m.display()
		case "6":
			if err := m.st.Save(m.path); err != nil {
				return fmt.Errorf("saving tasks: %w", err)
			}
			fmt.Fprintln(m.out, "Tasks saved. Exiting.")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

// prompt prints label and returns the next input line without its newline.
func (m *menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimRight(m.in.Text(), "\r"), nil
}

func (m *menu) add() error {
	var fields [4]string
	labels := [4]string{
		"Enter task title: ",
		"Enter task description: ",
		"Enter due date (YYYY-MM-DD): ",
		"Enter priority (low, medium, high): ",
	}
	for i, l := range labels {
		v, err := m.prompt(l)
		if err != nil {
			return err
		}
		fields[i] = v
	}

	if err := m.st.Add(fields[0], fields[1], strings.TrimSpace(fields[2]), fields[3]); err != nil {
		fmt.Fprintln(m.out, describeError(err))
		return nil
	}
	fmt.Fprintln(m.out, "Task added successfully!")
	return nil
}

// pickTask shows the list and asks for a task number. ok is false when the
// choice was reported as invalid.
func (m *menu) pickTask(label, action string) (int, bool, error) {
	shown, err := m.display()
	if err != nil || !shown {
		return 0, false, err
	}
	raw, err := m.prompt(label)
	if err != nil {
		return 0, false, err
	}
	index, err := store.ParseIndex(raw)
	if err == nil {
		_, err = m.st.Get(index)
	}
	if err != nil {
		fmt.Fprintf(m.out, "%s No task %s.\n", describeError(err), action)
		return 0, false, nil
	}
	return index, true, nil
}

func (m *menu) update() error {
	index, ok, err := m.pickTask("Enter the task number you want to update: ", "updated")
	if err != nil || !ok {
		return err
	}
	t, _ := m.st.Get(index)
	fmt.Fprintf(m.out, "Selected Task: %s - %s\n", t.Title, t.Description)

	var upd store.TaskUpdate
	prompts := []struct {
		label string
		field **string
	}{
		{"Enter new title (press Enter to keep the existing title): ", &upd.Title},
		{"Enter new description (press Enter to keep the existing description): ", &upd.Description},
		{"Enter new due date (YYYY-MM-DD, press Enter to keep the existing due date): ", &upd.DueDate},
		{"Enter new priority (low, medium, high, press Enter to keep the existing priority): ", &upd.Priority},
	}
	for _, p := range prompts {
		v, err := m.prompt(p.label)
		if err != nil {
			return err
		}
		*p.field = &v
	}
	if upd.DueDate != nil {
		d := strings.TrimSpace(*upd.DueDate)
		upd.DueDate = &d
	}

	if err := m.st.Update(index, upd); err != nil {
		fmt.Fprintf(m.out, "%s No task updated.\n", describeError(err))
		return nil
	}
	fmt.Fprintln(m.out, "Task updated successfully!")
	return nil
}

func (m *menu) complete() error {
	index, ok, err := m.pickTask("Enter the task number you want to mark as complete: ", "marked as complete")
	if err != nil || !ok {
		return err
	}
	changed, err := m.st.Complete(index)
	if err != nil {
		fmt.Fprintln(m.out, describeError(err))
		return nil
	}
	if !changed {
		fmt.Fprintln(m.out, "Task is already marked as complete.")
		return nil
	}
	fmt.Fprintln(m.out, "Task marked as complete!")
	return nil
}

func (m *menu) remove() error {
	index, ok, err := m.pickTask("Enter the task number you want to remove: ", "removed")
	if err != nil || !ok {
		return err
	}
	t, err := m.st.Remove(index)
	if err != nil {
		fmt.Fprintln(m.out, describeError(err))
		return nil
	}
	fmt.Fprintf(m.out, "Task '%s' removed successfully!\n", t.Title)
	return nil
}

var sortChoices = map[string]model.SortKey{
	"1": model.SortDueDate,
	"2": model.SortPriority,
	"3": model.SortNone,
	"4": model.SortRank,
}

// display asks for a sort order, applies it to the store and prints the
// list. It reports false when there was nothing to show.
func (m *menu) display() (bool, error) {
	if m.st.Len() == 0 {
		fmt.Fprintln(m.out, "No tasks found.")
		return false, nil
	}

	fmt.Fprintln(m.out, "\nSort Options:")
	fmt.Fprintln(m.out, "1. Sort by Due Date")
	fmt.Fprintln(m.out, "2. Sort by Priority")
	fmt.Fprintln(m.out, "3. Sort by Task Number (default)")
	fmt.Fprintln(m.out, "4. Sort by Priority Rank (high first)")
	choice, err := m.prompt("Enter your sorting choice (1/2/3/4): ")
	if err != nil {
		return false, err
	}
	key, ok := sortChoices[strings.TrimSpace(choice)]
	if !ok {
		key = model.SortNone
	}

	fmt.Fprintln(m.out, "\nTask List:")
	fmt.Fprintln(m.out, render.RenderTaskTable(m.st.List(key), now()))
	return true, nil
}
