// Package commit implements spec §4.6's commit procedure: optional
// auto-staging via -a, the nothing-to-commit check, and snapshotting the
// index into a new commit.
package commit

import (
	"time"

	"github.com/kassahun-b/svec/core"
	"github.com/kassahun-b/svec/internal/graph"
	"github.com/kassahun-b/svec/internal/store"
)

// Options are commit's flags.
type Options struct {
	All bool
}

// Result reports whether a commit was actually created.
type Result struct {
	Created  bool
	CommitID int
}

// Commit runs the full procedure. message must be non-empty.
func Commit(repo *core.Repository, st *store.State, message string, opts Options, author string, now time.Time) (Result, error) {
	if message == "" {
		return Result{}, core.ErrUsage
	}

	if opts.All {
		if err := autoStage(repo, st); err != nil {
			return Result{}, err
		}
	}

	tipID, hasTip := graph.Tip(st, st.CurrentBranch)
	if !hasTip && len(st.Index) == 0 {
		return Result{}, nil
	}
	if hasTip && sameAsHead(st.Index, st.Commits[tipID].Files) {
		return Result{}, nil
	}

	id := graph.NextCommitID(st)
	files := make(map[string]store.Blob, len(st.Index))
	for name, content := range st.Index {
		files[name] = content
	}
	st.Commits[id] = &store.Commit{
		ID:        id,
		Message:   message,
		Files:     files,
		CreatedAt: now,
		Author:    author,
	}
	st.CurrentBranchRef().Commits[id] = struct{}{}
	return Result{Created: true, CommitID: id}, nil
}

func sameAsHead(index, head map[string]store.Blob) bool {
	if len(index) != len(head) {
		return false
	}
	for name, content := range index {
		h, ok := head[name]
		if !ok || !store.BlobEqual(content, h) {
			return false
		}
	}
	return true
}

// autoStage replaces every already-indexed name's blob with the
// working-tree contents if present, or drops it from the index if the
// working file is gone. It never stages a name that isn't already in
// the index.
func autoStage(repo *core.Repository, st *store.State) error {
	for name := range st.Index {
		if repo.WorkingTreeHas(name) {
			content, err := repo.WorkingTreeRead(name)
			if err != nil {
				return err
			}
			st.Index[name] = append(store.Blob(nil), content...)
		} else {
			delete(st.Index, name)
		}
	}
	return nil
}
