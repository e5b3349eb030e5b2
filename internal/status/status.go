// Package status implements the Status Classifier (spec §4.5): the
// nine-way-plus table that classifies every path present in the working
// tree, the index, or the current branch's head commit.
package status

import (
	"sort"

	"github.com/kassahun-b/svec/core"
	"github.com/kassahun-b/svec/internal/graph"
	"github.com/kassahun-b/svec/internal/store"
)

// Entry is one classified path.
type Entry struct {
	Name   string
	Status string
}

// Classify returns the status of every path that appears in the working
// tree, the index, or the head commit of the current branch, sorted
// ascending by name.
func Classify(repo *core.Repository, st *store.State) ([]Entry, error) {
	working, err := repo.WorkingTreeFiles()
	if err != nil {
		return nil, err
	}

	head := map[string]store.Blob{}
	if tipID, ok := graph.Tip(st, st.CurrentBranch); ok {
		for name, content := range st.Commits[tipID].Files {
			head[name] = content
		}
	}

	seen := map[string]struct{}{}
	for name := range working {
		seen[name] = struct{}{}
	}
	for name := range st.Index {
		seen[name] = struct{}{}
	}
	for name := range head {
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		w, wOK := working[name]
		i, iOK := st.Index[name]
		h, hOK := head[name]
		entries = append(entries, Entry{Name: name, Status: classify(w, wOK, i, iOK, h, hOK)})
	}
	return entries, nil
}

// classify implements spec §4.5's table directly from the presence and
// pairwise-equality of the working tree (w), index (i), and head (h)
// versions of a single path.
func classify(w []byte, wOK bool, i []byte, iOK bool, h []byte, hOK bool) string {
	switch {
	case wOK && !iOK && !hOK:
		return "untracked"

	case wOK && iOK && !hOK:
		if store.BlobEqual(w, i) {
			return "added to index"
		}
		return "added to index, file changed"

	case !wOK && iOK && !hOK:
		return "added to index, file deleted"

	case !wOK && !iOK && hOK:
		return "file deleted, deleted from index"

	case wOK && !iOK && hOK:
		return "deleted from index"

	case !wOK && iOK && hOK:
		if store.BlobEqual(i, h) {
			return "file deleted"
		}
		return "file deleted, changes staged for commit"

	case wOK && iOK && hOK:
		switch {
		case store.BlobEqual(w, i) && store.BlobEqual(i, h):
			return "same as repo"
		case store.BlobEqual(i, h) && !store.BlobEqual(w, i):
			return "file changed, changes not staged for commit"
		case store.BlobEqual(w, i) && !store.BlobEqual(i, h):
			return "file changed, changes staged for commit"
		default:
			return "file changed, different changes staged for commit"
		}
	}
	return ""
}
