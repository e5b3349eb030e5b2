// Package checkout implements the Checkout Engine (spec §4.8): switching
// the current branch while preserving any local edits that do not
// collide with the destination branch's tip.
package checkout

import (
	"fmt"
	"sort"

	"github.com/kassahun-b/svec/core"
	"github.com/kassahun-b/svec/internal/graph"
	"github.com/kassahun-b/svec/internal/store"
)

// preserved is a path's exact local state (working tree and index),
// captured before the destructive working-tree swap so it can be
// reapplied afterward byte-identically.
type preserved struct {
	hasWorking bool
	working    []byte
	hasIndex   bool
	index      store.Blob
}

// staging accumulates the set of local paths that must survive a branch
// switch. It is built entirely in memory during the safety analysis —
// nothing touches disk until the switch is known to be safe, so there is
// no scratch state to dispose of on a rejected or failed switch.
type staging struct {
	preserve map[string]preserved
}

// Switch changes the current branch to target, preserving local edits
// that do not collide with target's tip. If target equals the current
// branch, this is a no-op that reports "already on" it.
func Switch(repo *core.Repository, st *store.State, target string) (alreadyOn bool, err error) {
	if target == st.CurrentBranch {
		return true, nil
	}

	targetBranch, exists := st.Branches[target]
	if !exists {
		return false, fmt.Errorf("%s: %w", target, core.ErrUnknownBranch)
	}
	dTip, dOK := targetBranch.Tip()
	if !dOK {
		return false, core.ErrPreCommit
	}
	sTip, sOK := graph.Tip(st, st.CurrentBranch)
	if !sOK {
		return false, core.ErrPreCommit
	}

	sFiles := st.Commits[sTip].Files
	dFiles := st.Commits[dTip].Files

	working, err := repo.WorkingTreeFiles()
	if err != nil {
		return false, err
	}

	stg := &staging{preserve: map[string]preserved{}}
	var offending []string

	// Edited-local: present in S, with W or I diverging from S's
	// recorded version (including being missing entirely).
	for name, sContent := range sFiles {
		w, wOK := working[name]
		i, iOK := st.Index[name]
		wDiverges := !wOK || !store.BlobEqual(w, sContent)
		iDiverges := !iOK || !store.BlobEqual(i, sContent)
		if !wDiverges && !iDiverges {
			continue
		}

		dContent, dHas := dFiles[name]
		if dHas && !store.BlobEqual(dContent, sContent) {
			offending = append(offending, name)
			continue
		}
		stg.preserve[name] = preserved{hasWorking: wOK, working: w, hasIndex: iOK, index: i}
	}

	// New-local: present in W or I, absent from S.
	newLocalNames := map[string]struct{}{}
	for name := range working {
		if _, inS := sFiles[name]; !inS {
			newLocalNames[name] = struct{}{}
		}
	}
	for name := range st.Index {
		if _, inS := sFiles[name]; !inS {
			newLocalNames[name] = struct{}{}
		}
	}
	for name := range newLocalNames {
		if _, already := stg.preserve[name]; already {
			continue
		}
		if _, dHas := dFiles[name]; dHas {
			offending = append(offending, name)
			continue
		}
		w, wOK := working[name]
		i, iOK := st.Index[name]
		stg.preserve[name] = preserved{hasWorking: wOK, working: w, hasIndex: iOK, index: i}
	}

	if len(offending) > 0 {
		sort.Strings(offending)
		return false, &core.CheckoutUnsafeError{Paths: offending}
	}

	// Safe: delete every S path from working tree and index (except the
	// reserved message slot, which is never a real tracked file).
	for name := range sFiles {
		if name == core.ReservedFileName {
			continue
		}
		delete(st.Index, name)
		if err := repo.WorkingTreeRemove(name); err != nil {
			return false, err
		}
	}

	// Bring in every D path.
	for name, content := range dFiles {
		if name == core.ReservedFileName {
			continue
		}
		if err := repo.WorkingTreeWrite(name, content); err != nil {
			return false, err
		}
		st.Index[name] = content
	}

	// Reapply the preserved local state exactly.
	for name, p := range stg.preserve {
		if p.hasWorking {
			if err := repo.WorkingTreeWrite(name, p.working); err != nil {
				return false, err
			}
		} else {
			if err := repo.WorkingTreeRemove(name); err != nil {
				return false, err
			}
		}
		if p.hasIndex {
			st.Index[name] = p.index
		} else {
			delete(st.Index, name)
		}
	}

	st.CurrentBranch = target
	return false, nil
}
