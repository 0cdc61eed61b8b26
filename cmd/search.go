package cmd

import (
	"fmt"

	"github.com/rogersnm/taskpad/internal/store"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search task titles and descriptions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.TaskStore) (bool, error) {
			out := cmd.OutOrStdout()
			results := st.Search(args[0])
			if len(results) == 0 {
				fmt.Fprintln(out, "No results found.")
				return false, nil
			}
			for _, r := range results {
				fmt.Fprintf(out, "  %d  %s\n", r.Index, r.Title)
				if r.Snippet != "" {
					fmt.Fprintf(out, "    %s\n", r.Snippet)
				}
			}
			return false, nil
		})
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
