package cmd

import (
	"fmt"
	"time"

	"github.com/kassahun-b/svec/core"
	"github.com/kassahun-b/svec/internal/merge"
	"github.com/kassahun-b/svec/internal/store"
	"github.com/kassahun-b/svec/utils"
)

var mergeMessage string

func init() {
	cmd := NewCommand(
		"merge <branch|commit-id>",
		"Merge another branch (or a branch containing the given commit id) into the current branch",
		func(repo *core.Repository, st *store.State, args []string) error {
			author, err := utils.Author(repo)
			if err != nil {
				return err
			}
			result, err := merge.Merge(repo, st, args[0], mergeMessage, author, time.Now())
			if err != nil {
				return err
			}
			switch result.Outcome {
			case merge.UpToDate:
				fmt.Println("Already up to date")
			case merge.FastForward:
				fmt.Println("Fast-forward: no commit created")
			case merge.Committed:
				fmt.Printf("Committed as commit %d\n", result.CommitID)
			}
			return nil
		},
		1,
	)
	cmd.Flags().StringVarP(&mergeMessage, "message", "m", "", "merge commit message")
	rootCmd.AddCommand(cmd)
}
