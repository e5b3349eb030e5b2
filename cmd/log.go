package cmd

import (
	"fmt"
	"sort"

	"github.com/kassahun-b/svec/core"
	"github.com/kassahun-b/svec/internal/store"
)

func init() {
	rootCmd.AddCommand(NewCommand(
		"log",
		"Show the commit history of the current branch, tip first",
		func(repo *core.Repository, st *store.State, args []string) error {
			branch := st.CurrentBranchRef()
			ids := make([]int, 0, len(branch.Commits))
			for id := range branch.Commits {
				ids = append(ids, id)
			}
			sort.Sort(sort.Reverse(sort.IntSlice(ids)))
			for _, id := range ids {
				fmt.Printf("%d %s\n", id, st.Commits[id].Message)
			}
			return nil
		},
		0,
	))
}
