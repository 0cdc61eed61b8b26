package cmd

import (
	"fmt"
	"os"

	"github.com/rogersnm/taskpad/internal/repofile"
	"github.com/spf13/cobra"
)

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Manage the repo-local task file link",
}

var repoInitCmd = &cobra.Command{
	Use:   "init [task-file]",
	Short: "Link the current directory to a task file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := defaultTaskFile
		if len(args) == 1 {
			target = args[0]
		}

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		if err := repofile.Write(cwd, target); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Linked %s to %s\n", repofile.FileName, repofile.Resolve(cwd, target))
		return nil
	},
}

var repoShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show which task file is in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		file, dir, err := repofile.Find(cwd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if file == "" {
			fmt.Fprintf(out, "No task file linked. Using %s\n", resolveTaskFile())
			return nil
		}
		fmt.Fprintf(out, "%s (from %s/%s)\n", file, dir, repofile.FileName)
		return nil
	},
}

var repoUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Remove the repo-local task file link",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		removed, err := repofile.Remove(cwd)
		if err != nil {
			return err
		}
		if !removed {
			fmt.Fprintln(cmd.OutOrStdout(), "No task file linked.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Unlinked task file.")
		return nil
	},
}

func init() {
	repoCmd.AddCommand(repoInitCmd)
	repoCmd.AddCommand(repoShowCmd)
	repoCmd.AddCommand(repoUnlinkCmd)
	rootCmd.AddCommand(repoCmd)
}
