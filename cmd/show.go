package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kassahun-b/svec/core"
	"github.com/kassahun-b/svec/internal/diffview"
	"github.com/kassahun-b/svec/internal/store"
)

var showDiff bool

func init() {
	cmd := NewCommand(
		"show <commit>:<file>",
		"Show a file's contents as of a commit, or as staged in the index when commit is empty",
		func(repo *core.Repository, st *store.State, args []string) error {
			ref := args[0]
			sep := strings.Index(ref, ":")
			if sep < 0 {
				return fmt.Errorf("%s: expected <commit>:<file>: %w", ref, core.ErrUsage)
			}
			commitPart, name := ref[:sep], ref[sep+1:]

			var content store.Blob
			var commitID int
			var isCommit bool
			if commitPart == "" {
				c, ok := st.Index[name]
				if !ok {
					return fmt.Errorf("%s: %w", name, core.ErrMissingFile)
				}
				content = c
			} else {
				id, err := strconv.Atoi(commitPart)
				if err != nil {
					return fmt.Errorf("%s: %w", commitPart, core.ErrUnknownCommit)
				}
				c, ok := st.Commits[id]
				if !ok {
					return fmt.Errorf("%s: %w", commitPart, core.ErrUnknownCommit)
				}
				blob, ok := c.Files[name]
				if !ok {
					return fmt.Errorf("%s: %w", name, core.ErrMissingFile)
				}
				content = blob
				commitID, isCommit = id, true
			}

			if showDiff && isCommit {
				prevID, ok := previousCommit(st, commitID)
				if ok {
					prevContent, prevHas := st.Commits[prevID].Files[name]
					out := diffview.Render(name,
						diffview.Label{Side: diffview.Commit, Ref: strconv.Itoa(prevID)},
						diffview.Label{Side: diffview.Commit, Ref: strconv.Itoa(commitID)},
						prevContent, content, prevHas, true)
					fmt.Print(out)
					return nil
				}
			}

			_, err := fmt.Print(string(content))
			return err
		},
		1,
	)
	cmd.Flags().BoolVar(&showDiff, "diff", false, "show a diff against the previous commit on the current branch instead of the raw content")
	rootCmd.AddCommand(cmd)
}

// previousCommit returns the largest commit id in the current branch's
// commit set that is smaller than id, and false if id is the branch's
// first commit.
func previousCommit(st *store.State, id int) (int, bool) {
	prev, found := -1, false
	for candidate := range st.CurrentBranchRef().Commits {
		if candidate < id && (!found || candidate > prev) {
			prev = candidate
			found = true
		}
	}
	return prev, found
}
