package status

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kassahun-b/svec/core"
	"github.com/kassahun-b/svec/internal/store"
)

func newRepo(t *testing.T) (*core.Repository, *store.State) {
	t.Helper()
	dir, err := os.MkdirTemp("", "svec-status-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	repo, err := core.Init(dir)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	st, err := repo.LoadState()
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	return repo, st
}

func write(t *testing.T, repo *core.Repository, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(repo.Root, name), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", name, err)
	}
}

func statusOf(t *testing.T, entries []Entry, name string) string {
	t.Helper()
	for _, e := range entries {
		if e.Name == name {
			return e.Status
		}
	}
	t.Fatalf("no status entry for %s", name)
	return ""
}

func TestClassifyUntracked(t *testing.T) {
	repo, st := newRepo(t)
	write(t, repo, "new.txt", "hi")

	entries, err := Classify(repo, st)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got := statusOf(t, entries, "new.txt"); got != "untracked" {
		t.Errorf("status = %q, want untracked", got)
	}
}

func TestClassifyAddedToIndex(t *testing.T) {
	repo, st := newRepo(t)
	write(t, repo, "a.txt", "hi")
	st.Index["a.txt"] = store.Blob("hi")

	entries, err := Classify(repo, st)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got := statusOf(t, entries, "a.txt"); got != "added to index" {
		t.Errorf("status = %q, want added to index", got)
	}
}

func TestClassifyAddedToIndexFileChanged(t *testing.T) {
	repo, st := newRepo(t)
	write(t, repo, "a.txt", "changed")
	st.Index["a.txt"] = store.Blob("original")

	entries, err := Classify(repo, st)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got := statusOf(t, entries, "a.txt"); got != "added to index, file changed" {
		t.Errorf("status = %q, want added to index, file changed", got)
	}
}

func TestClassifySameAsRepo(t *testing.T) {
	repo, st := newRepo(t)
	write(t, repo, "a.txt", "hi")
	st.Index["a.txt"] = store.Blob("hi")
	st.Commits[0] = &store.Commit{ID: 0, Files: map[string]store.Blob{"a.txt": store.Blob("hi")}, CreatedAt: time.Unix(0, 0)}
	st.Branches["trunk"].Commits[0] = struct{}{}

	entries, err := Classify(repo, st)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got := statusOf(t, entries, "a.txt"); got != "same as repo" {
		t.Errorf("status = %q, want same as repo", got)
	}
}

func TestClassifyFileChangedNotStaged(t *testing.T) {
	repo, st := newRepo(t)
	write(t, repo, "a.txt", "edited")
	st.Index["a.txt"] = store.Blob("hi")
	st.Commits[0] = &store.Commit{ID: 0, Files: map[string]store.Blob{"a.txt": store.Blob("hi")}, CreatedAt: time.Unix(0, 0)}
	st.Branches["trunk"].Commits[0] = struct{}{}

	entries, err := Classify(repo, st)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got := statusOf(t, entries, "a.txt"); got != "file changed, changes not staged for commit" {
		t.Errorf("status = %q, want file changed, changes not staged for commit", got)
	}
}

func TestClassifyFileDeleted(t *testing.T) {
	repo, st := newRepo(t)
	st.Index["a.txt"] = store.Blob("hi")
	st.Commits[0] = &store.Commit{ID: 0, Files: map[string]store.Blob{"a.txt": store.Blob("hi")}, CreatedAt: time.Unix(0, 0)}
	st.Branches["trunk"].Commits[0] = struct{}{}

	entries, err := Classify(repo, st)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got := statusOf(t, entries, "a.txt"); got != "file deleted" {
		t.Errorf("status = %q, want file deleted", got)
	}
}

func TestClassifyFileDeletedDeletedFromIndex(t *testing.T) {
	repo, st := newRepo(t)
	st.Commits[0] = &store.Commit{ID: 0, Files: map[string]store.Blob{"a.txt": store.Blob("hi")}, CreatedAt: time.Unix(0, 0)}
	st.Branches["trunk"].Commits[0] = struct{}{}

	entries, err := Classify(repo, st)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got := statusOf(t, entries, "a.txt"); got != "file deleted, deleted from index" {
		t.Errorf("status = %q, want file deleted, deleted from index", got)
	}
}
