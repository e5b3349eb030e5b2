package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kassahun-b/svec/core"
	"github.com/kassahun-b/svec/internal/store"
)

func newRepo(t *testing.T) *core.Repository {
	t.Helper()
	dir, err := os.MkdirTemp("", "svec-index-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	repo, err := core.Init(dir)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	return repo
}

func TestAddStagesNewFile(t *testing.T) {
	repo := newRepo(t)
	if err := os.WriteFile(filepath.Join(repo.Root, "a.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	st := store.New()
	st.Branches["trunk"] = &store.Branch{Name: "trunk", Commits: map[int]struct{}{}}
	st.CurrentBranch = "trunk"

	if err := Add(repo, st, []string{"a.txt"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !store.BlobEqual(st.Index["a.txt"], store.Blob("hello")) {
		t.Errorf("index entry for a.txt = %q, want hello", st.Index["a.txt"])
	}
}

func TestAddMissingFileUntrackedIsError(t *testing.T) {
	repo := newRepo(t)
	st := store.New()

	if err := Add(repo, st, []string{"nope.txt"}); err == nil {
		t.Errorf("expected Add to fail for a missing, untracked path")
	}
}

func TestAddMissingFileTrackedStagesDeletion(t *testing.T) {
	repo := newRepo(t)
	st := store.New()
	st.Index["gone.txt"] = store.Blob("old content")

	if err := Add(repo, st, []string{"gone.txt"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, tracked := st.Index["gone.txt"]; tracked {
		t.Errorf("expected Add to remove a missing, previously-tracked file from the index")
	}
}

func TestAddRejectsDirectory(t *testing.T) {
	repo := newRepo(t)
	if err := os.Mkdir(filepath.Join(repo.Root, "subdir"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	st := store.New()

	if err := Add(repo, st, []string{"subdir"}); err == nil {
		t.Errorf("expected Add to reject a directory path")
	}
}

func TestAddRejectsReservedName(t *testing.T) {
	repo := newRepo(t)
	st := store.New()

	if err := Add(repo, st, []string{"_MESSAGE"}); err == nil {
		t.Errorf("expected Add to reject the reserved _MESSAGE name")
	}
}
