package cmd

import (
	"github.com/kassahun-b/svec/core"
	"github.com/kassahun-b/svec/internal/rmplan"
	"github.com/kassahun-b/svec/internal/store"
)

var rmCached bool
var rmForce bool

func init() {
	cmd := NewCommand(
		"rm <file>...",
		"Remove files from the working tree and the index",
		func(repo *core.Repository, st *store.State, args []string) error {
			return rmplan.Remove(repo, st, args, rmplan.Options{Cached: rmCached, Force: rmForce})
		},
		1,
	)
	cmd.Flags().BoolVar(&rmCached, "cached", false, "only remove from the index")
	cmd.Flags().BoolVarP(&rmForce, "force", "f", false, "override the up-to-date checks")
	rootCmd.AddCommand(cmd)
}
