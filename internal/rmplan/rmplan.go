// Package rmplan implements the Removal Planner (spec §4.7): the four
// cascading safety predicates that decide whether `rm` may proceed
// without silently discarding data, across the four --cached/--force
// mode combinations.
package rmplan

import (
	"fmt"

	"github.com/kassahun-b/svec/core"
	"github.com/kassahun-b/svec/internal/graph"
	"github.com/kassahun-b/svec/internal/store"
)

// Options are rm's flags. Cached and Force are independent and
// order-free on the command line.
type Options struct {
	Cached bool
	Force  bool
}

// Remove validates every path against the safety predicates before
// applying any change — a rejected path leaves the whole invocation with
// zero effect. On success, Cached removes only from the index; otherwise
// both the index and the working tree lose the file.
func Remove(repo *core.Repository, st *store.State, paths []string, opts Options) error {
	for _, name := range paths {
		if err := checkSafety(repo, st, name, opts); err != nil {
			return err
		}
	}
	for _, name := range paths {
		delete(st.Index, name)
		if !opts.Cached {
			if err := repo.WorkingTreeRemove(name); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkSafety applies the four predicates in cascading order, returning
// the first one that trips.
func checkSafety(repo *core.Repository, st *store.State, name string, opts Options) error {
	wOK := repo.WorkingTreeHas(name)
	i, iOK := st.Index[name]

	var h store.Blob
	var hOK bool
	if tipID, ok := graph.Tip(st, st.CurrentBranch); ok {
		h, hOK = st.Commits[tipID].Files[name]
	}

	if !wOK && !iOK && !hOK {
		return fmt.Errorf("%s: %w", name, core.ErrMissingFile)
	}

	// P1: always applied, even under --force.
	if hOK && !iOK {
		return &core.RmUnsafeError{Path: name, Reason: "not in the git repository"}
	}

	if opts.Force {
		return nil
	}

	var w store.Blob
	if wOK {
		content, err := repo.WorkingTreeRead(name)
		if err != nil {
			return err
		}
		w = content
	}

	// P2: applied in plain and --cached modes.
	if iOK {
		divergesFromWorking := !wOK || !store.BlobEqual(i, w)
		divergesFromHead := !hOK || !store.BlobEqual(i, h)
		if divergesFromWorking && divergesFromHead {
			return &core.RmUnsafeError{
				Path:   name,
				Reason: "in index is different to both the working file and the repository",
			}
		}
	}

	if opts.Cached {
		return nil
	}

	// P3: plain mode only.
	if wOK && iOK && store.BlobEqual(w, i) {
		if !hOK || !store.BlobEqual(i, h) {
			return &core.RmUnsafeError{Path: name, Reason: "has staged changes in the index"}
		}
	}

	// P4: plain mode only.
	if wOK && (!hOK || !store.BlobEqual(w, h)) {
		return &core.RmUnsafeError{Path: name, Reason: "in the repository is different to the working file"}
	}

	return nil
}
