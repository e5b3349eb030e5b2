package cmd

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/kassahun-b/svec/core"
	"github.com/kassahun-b/svec/internal/graph"
	"github.com/kassahun-b/svec/internal/store"
)

var branchDelete string

func init() {
	cmd := NewCommand(
		"branch [<name>]",
		"List, create, or delete branches",
		func(repo *core.Repository, st *store.State, args []string) error {
			if branchDelete != "" {
				return deleteBranch(st, branchDelete)
			}
			if len(args) == 0 {
				return listBranches(st)
			}
			return createBranch(st, args[0])
		},
		0,
	)
	cmd.Flags().StringVarP(&branchDelete, "delete", "d", "", "delete a branch")
	rootCmd.AddCommand(cmd)
}

func listBranches(st *store.State) error {
	names := make([]string, 0, len(st.Branches))
	for name := range st.Branches {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if name == st.CurrentBranch {
			fmt.Println(color.GreenString("* " + name))
			continue
		}
		fmt.Println("  " + name)
	}
	return nil
}

func createBranch(st *store.State, name string) error {
	if err := core.ValidateBranchName(name); err != nil {
		return err
	}
	if _, exists := st.Branches[name]; exists {
		return fmt.Errorf("%s: %w", name, core.ErrDuplicateBranch)
	}
	st.Branches[name] = st.CurrentBranchRef().Clone(name)
	return nil
}

func deleteBranch(st *store.State, name string) error {
	if name == core.TrunkBranch || name == st.CurrentBranch {
		return fmt.Errorf("%s: %w", name, core.ErrProtectedBranch)
	}
	branch, exists := st.Branches[name]
	if !exists {
		return fmt.Errorf("%s: %w", name, core.ErrUnknownBranch)
	}
	if tip, ok := branch.Tip(); ok && !graph.Contains(st, st.CurrentBranch, tip) {
		return fmt.Errorf("%s: %w", name, core.ErrUnmergedBranch)
	}
	delete(st.Branches, name)
	return nil
}
