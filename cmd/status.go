package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/kassahun-b/svec/core"
	"github.com/kassahun-b/svec/internal/status"
	"github.com/kassahun-b/svec/internal/store"
)

func init() {
	rootCmd.AddCommand(NewCommand(
		"status",
		"Show the working tree status",
		func(repo *core.Repository, st *store.State, args []string) error {
			entries, err := status.Classify(repo, st)
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Printf("%s - %s\n", e.Name, colorizeStatus(e.Status))
			}
			return nil
		},
		0,
	))
}

// colorizeStatus highlights a status for a terminal; fatih/color
// disables escapes automatically when stdout isn't a tty, so piped
// output stays plain text.
func colorizeStatus(s string) string {
	switch s {
	case "untracked":
		return color.RedString(s)
	case "same as repo":
		return color.GreenString(s)
	default:
		return color.YellowString(s)
	}
}
