package cmd

import (
	"github.com/kassahun-b/svec/core"
	"github.com/kassahun-b/svec/internal/index"
	"github.com/kassahun-b/svec/internal/store"
)

func init() {
	rootCmd.AddCommand(NewCommand(
		"add <file>...",
		"Add file contents to the index",
		func(repo *core.Repository, st *store.State, args []string) error {
			return index.Add(repo, st, args)
		},
		1,
	))
}
