package cmd

import (
	"fmt"
	"sort"

	"github.com/kassahun-b/svec/core"
	"github.com/kassahun-b/svec/internal/diffview"
	"github.com/kassahun-b/svec/internal/graph"
	"github.com/kassahun-b/svec/internal/store"
)

var diffCached bool

func init() {
	cmd := NewCommand(
		"diff [<path>...]",
		"Show changes between the working tree, the index, and the head commit",
		func(repo *core.Repository, st *store.State, args []string) error {
			working, err := repo.WorkingTreeFiles()
			if err != nil {
				return err
			}

			var oldSet, newSet map[string]store.Blob
			var from, to diffview.Label

			if diffCached {
				oldSet = map[string]store.Blob{}
				if tipID, ok := graph.Tip(st, st.CurrentBranch); ok {
					oldSet = st.Commits[tipID].Files
				}
				newSet = st.Index
				from, to = diffview.Label{Side: diffview.Commit}, diffview.Label{Side: diffview.Index}
			} else {
				oldSet = st.Index
				newSet = blobsOf(working)
				from, to = diffview.Label{Side: diffview.Index}, diffview.Label{Side: diffview.Working}
			}

			for _, name := range selectedNames(oldSet, newSet, args) {
				o, oOK := oldSet[name]
				n, nOK := newSet[name]
				out := diffview.Render(name, from, to, o, n, oOK, nOK)
				if out != "" {
					fmt.Print(out)
				}
			}
			return nil
		},
		0,
	)
	cmd.Flags().BoolVar(&diffCached, "cached", false, "compare the index against the head commit instead of the working tree")
	rootCmd.AddCommand(cmd)
}

func blobsOf(files map[string][]byte) map[string]store.Blob {
	out := make(map[string]store.Blob, len(files))
	for name, content := range files {
		out[name] = content
	}
	return out
}

func selectedNames(a, b map[string]store.Blob, pathFilter []string) []string {
	allow := map[string]bool{}
	for _, f := range pathFilter {
		allow[f] = true
	}
	seen := map[string]struct{}{}
	for name := range a {
		seen[name] = struct{}{}
	}
	for name := range b {
		seen[name] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		if len(pathFilter) > 0 && !allow[name] {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
