package cmd

import (
	"fmt"
	"time"

	"github.com/kassahun-b/svec/core"
	"github.com/kassahun-b/svec/internal/commit"
	"github.com/kassahun-b/svec/internal/store"
	"github.com/kassahun-b/svec/utils"
)

var commitAll bool
var commitMessage string

func init() {
	cmd := NewCommand(
		"commit",
		"Record changes to the repository",
		func(repo *core.Repository, st *store.State, args []string) error {
			author, err := utils.Author(repo)
			if err != nil {
				return err
			}
			result, err := commit.Commit(repo, st, commitMessage, commit.Options{All: commitAll}, author, time.Now())
			if err != nil {
				return err
			}
			if !result.Created {
				fmt.Println("nothing to commit")
				return nil
			}
			fmt.Printf("Committed as commit %d\n", result.CommitID)
			return nil
		},
		0,
	)
	cmd.Flags().BoolVarP(&commitAll, "all", "a", false, "stage all tracked changes before committing")
	cmd.Flags().StringVarP(&commitMessage, "message", "m", "", "commit message")
	rootCmd.AddCommand(cmd)
}
