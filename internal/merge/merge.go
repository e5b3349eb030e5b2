// Package merge implements the Merge Engine (spec §4.9): combining the
// tip of another branch into the current branch, through the
// already-up-to-date, fast-forward, and three-way cases. There is no
// content-level auto-resolution here — a path modified differently on
// both sides is reported as a conflict, never merged line-by-line.
package merge

import (
	"fmt"
	"sort"
	"time"

	"github.com/kassahun-b/svec/core"
	"github.com/kassahun-b/svec/internal/graph"
	"github.com/kassahun-b/svec/internal/store"
)

// Outcome distinguishes the three ways a merge can end successfully.
type Outcome int

const (
	UpToDate Outcome = iota
	FastForward
	Committed
)

// Result reports what happened and, for Committed, the new commit's id.
type Result struct {
	Outcome  Outcome
	CommitID int
}

// ConflictError lists the paths that could not be merged automatically.
// Nothing in st is mutated when this is returned.
type ConflictError struct {
	Paths []string
}

func (e *ConflictError) Error() string {
	msg := "These files can not be merged:"
	for _, p := range e.Paths {
		msg += "\n" + p
	}
	return msg
}

// Unwrap lets errors.Is match a ConflictError against core.ErrMergeConflict.
func (e *ConflictError) Unwrap() error {
	return core.ErrMergeConflict
}

// Merge merges target (a branch name or a numeric commit id) into the
// current branch of st. message is attached to the merge commit, if one
// is created; author and now populate its ambient metadata.
func Merge(repo *core.Repository, st *store.State, target, message, author string, now time.Time) (Result, error) {
	if message == "" {
		return Result{}, core.ErrUsage
	}

	current := st.CurrentBranch
	if _, ok := graph.Tip(st, current); !ok {
		return Result{}, core.ErrPreCommit
	}

	source, ok := graph.ResolveTarget(st, target)
	if !ok {
		return Result{}, fmt.Errorf("%s: %w", target, core.ErrUnknownBranch)
	}

	sourceBranch := st.Branches[source]
	sourceTip, _ := sourceBranch.Tip()
	currentTip, _ := graph.Tip(st, current)

	if graph.Contains(st, current, sourceTip) {
		return Result{Outcome: UpToDate}, nil
	}
	if graph.Contains(st, source, currentTip) {
		// Fast-forward: S's tip is an ancestor of D. Union in D's whole
		// commit set, not just its tip, so history spec.md §3 invariant 4
		// ("may add commit IDs ... never remove") is not quietly dropped.
		for id := range sourceBranch.Commits {
			st.CurrentBranchRef().Commits[id] = struct{}{}
		}
		if err := applySnapshot(repo, st, st.Commits[currentTip].Files, st.Commits[sourceTip].Files); err != nil {
			return Result{}, err
		}
		return Result{Outcome: FastForward}, nil
	}

	lca, found := graph.LowestCommonAncestor(st, current, source)
	if !found {
		return Result{}, fmt.Errorf("%s and %s: %w", current, source, core.ErrUnknownCommit)
	}

	base := st.Commits[lca].Files
	ours := st.Commits[currentTip].Files
	theirs := st.Commits[sourceTip].Files

	merged, conflicts := threeWay(base, ours, theirs)
	if len(conflicts) > 0 {
		sort.Strings(conflicts)
		return Result{}, &ConflictError{Paths: conflicts}
	}

	id := graph.NextCommitID(st)
	commit := &store.Commit{
		ID:        id,
		Message:   message,
		Files:     merged,
		CreatedAt: now,
		Author:    author,
	}
	st.Commits[id] = commit
	st.CurrentBranchRef().Commits[id] = struct{}{}
	for sid := range sourceBranch.Commits {
		st.CurrentBranchRef().Commits[sid] = struct{}{}
	}

	if err := applySnapshot(repo, st, ours, merged); err != nil {
		return Result{}, err
	}
	return Result{Outcome: Committed, CommitID: id}, nil
}

// threeWay implements spec §4.9's synthesis exactly: ΔS/ΔD are files
// present in the common ancestor whose blob changed on that side; a
// conflict is a path in both deltas, present in both tips, with
// differing content. On success the merged snapshot is ΔS, then ΔD
// without overwrite, then every remaining file of each tip without
// overwrite — deletions are never propagated, since a file dropped on
// one side but untouched on the other survives via the other side's
// "remaining" pass.
func threeWay(base, ours, theirs map[string]store.Blob) (map[string]store.Blob, []string) {
	deltaS := map[string]struct{}{}
	for f, b := range base {
		if o, ok := ours[f]; ok && !store.BlobEqual(o, b) {
			deltaS[f] = struct{}{}
		}
	}
	deltaD := map[string]struct{}{}
	for f, b := range base {
		if t, ok := theirs[f]; ok && !store.BlobEqual(t, b) {
			deltaD[f] = struct{}{}
		}
	}

	var conflicts []string
	for f := range deltaS {
		if _, inD := deltaD[f]; !inD {
			continue
		}
		o, oOK := ours[f]
		t, tOK := theirs[f]
		if oOK && tOK && !store.BlobEqual(o, t) {
			conflicts = append(conflicts, f)
		}
	}
	if len(conflicts) > 0 {
		return nil, conflicts
	}

	merged := map[string]store.Blob{}
	for f := range deltaS {
		merged[f] = ours[f]
	}
	for f := range deltaD {
		if _, already := merged[f]; !already {
			merged[f] = theirs[f]
		}
	}
	for f, content := range ours {
		if _, already := merged[f]; !already {
			merged[f] = content
		}
	}
	for f, content := range theirs {
		if _, already := merged[f]; !already {
			merged[f] = content
		}
	}
	return merged, nil
}

// applySnapshot overwrites the working tree and index to match snapshot,
// used after a fast-forward or successful three-way merge. previous is
// the file set the merge is moving away from (the old head for a
// fast-forward, ours for a three-way commit): only names that were
// actually present there are ever deleted from the working tree, so
// untracked working-tree files that never belonged to either side are
// left alone — the same scoping the Checkout Engine uses
// (internal/checkout). The index, by contrast, loses every entry that
// snapshot does not contain.
func applySnapshot(repo *core.Repository, st *store.State, previous, snapshot map[string]store.Blob) error {
	for name := range previous {
		if _, keep := snapshot[name]; !keep {
			if err := repo.WorkingTreeRemove(name); err != nil {
				return err
			}
		}
	}
	for name := range st.Index {
		if _, keep := snapshot[name]; !keep {
			delete(st.Index, name)
		}
	}
	for name, content := range snapshot {
		if err := repo.WorkingTreeWrite(name, content); err != nil {
			return err
		}
		st.Index[name] = content
	}
	return nil
}
