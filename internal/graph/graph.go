// Package graph implements the Commit Graph: queries over a loaded
// repository State's branch commit-id sets. Ancestry here is purely a
// function of set membership — commits carry no parent pointers, unlike
// the DAG-walk approach of this project's teacher lineage (see
// DESIGN.md).
package graph

import (
	"sort"

	"github.com/kassahun-b/svec/internal/store"
)

// Tip returns the tip commit id of the named branch: the largest id in
// its commit set. ok is false if the branch has no commits yet.
func Tip(s *store.State, branch string) (id int, ok bool) {
	b, exists := s.Branches[branch]
	if !exists {
		return 0, false
	}
	return b.Tip()
}

// Contains reports whether id is reachable from branch.
func Contains(s *store.State, branch string, id int) bool {
	b, exists := s.Branches[branch]
	if !exists {
		return false
	}
	return b.Contains(id)
}

// NextCommitID returns the id the next commit will receive. Commit ids
// are exactly {0..N-1} with no gaps, so this is simply the current
// commit count.
func NextCommitID(s *store.State) int {
	return len(s.Commits)
}

// FindOwningBranch resolves a commit id to a branch that contains it.
// When several branches contain id, the branch whose tip equals id wins;
// failing that, the lexicographically smallest branch name wins. This is
// the documented resolution of spec's Open Question #1.
func FindOwningBranch(s *store.State, id int) (string, bool) {
	var candidates []string
	for name, b := range s.Branches {
		if b.Contains(id) {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.Strings(candidates)
	for _, name := range candidates {
		if tip, ok := s.Branches[name].Tip(); ok && tip == id {
			return name, true
		}
	}
	return candidates[0], true
}

// LowestCommonAncestor returns the largest commit id present in both
// branches' commit sets, and false if the branches share no commit
// (which should not happen once both descend from trunk's initial
// commit).
func LowestCommonAncestor(s *store.State, branchA, branchB string) (int, bool) {
	a, aOK := s.Branches[branchA]
	b, bOK := s.Branches[branchB]
	if !aOK || !bOK {
		return 0, false
	}
	best, found := -1, false
	for id := range a.Commits {
		if _, ok := b.Commits[id]; ok && (!found || id > best) {
			best = id
			found = true
		}
	}
	return best, found
}

// ResolveTarget resolves a merge target argument that may be
// either a branch name or a numeric commit id (as a decimal string,
// spec §4.9) to a concrete branch name. If ref names neither, ok is
// false.
func ResolveTarget(s *store.State, ref string) (branch string, ok bool) {
	if _, exists := s.Branches[ref]; exists {
		return ref, true
	}
	id, isNumeric := parseCommitID(ref)
	if !isNumeric {
		return "", false
	}
	if _, exists := s.Commits[id]; !exists {
		return "", false
	}
	return FindOwningBranch(s, id)
}

func parseCommitID(ref string) (int, bool) {
	if ref == "" {
		return 0, false
	}
	n := 0
	for _, c := range ref {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
