package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitCreatesRepository(t *testing.T) {
	dir, err := os.MkdirTemp("", "svec-core-repo-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(dir)

	repo, err := Init(dir)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !FileExists(filepath.Join(dir, DirName)) {
		t.Errorf("expected %s directory to exist after Init", DirName)
	}

	st, err := repo.LoadState()
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if st.CurrentBranch != TrunkBranch {
		t.Errorf("CurrentBranch = %q, want %q", st.CurrentBranch, TrunkBranch)
	}
	if _, ok := st.Branches[TrunkBranch]; !ok {
		t.Errorf("expected the %q branch to exist after Init", TrunkBranch)
	}
}

func TestInitRejectsExistingRepository(t *testing.T) {
	dir, err := os.MkdirTemp("", "svec-core-repo-exists-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(dir)

	if _, err := Init(dir); err != nil {
		t.Fatalf("first Init: %v", err)
	}
	if _, err := Init(dir); err == nil {
		t.Errorf("expected a second Init in the same directory to fail")
	}
}

func TestFindRepositoryWalksUpward(t *testing.T) {
	dir, err := os.MkdirTemp("", "svec-core-find-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(dir)

	if _, err := Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	nested := filepath.Join(dir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	t.Setenv(RepoPathEnv, "")
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	defer os.Chdir(cwd)
	if err := os.Chdir(nested); err != nil {
		t.Fatalf("Chdir: %v", err)
	}

	repo, err := FindRepository()
	if err != nil {
		t.Fatalf("FindRepository: %v", err)
	}
	resolved, err := filepath.EvalSymlinks(repo.Root)
	if err != nil {
		t.Fatalf("EvalSymlinks: %v", err)
	}
	wantRoot, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("EvalSymlinks: %v", err)
	}
	if resolved != wantRoot {
		t.Errorf("FindRepository root = %q, want %q", resolved, wantRoot)
	}
}

func TestFindRepositoryNotFound(t *testing.T) {
	dir, err := os.MkdirTemp("", "svec-core-notfound-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(dir)

	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("EvalSymlinks: %v", err)
	}
	t.Setenv(RepoPathEnv, "")
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	defer os.Chdir(cwd)
	if err := os.Chdir(resolved); err != nil {
		t.Fatalf("Chdir: %v", err)
	}

	if _, err := FindRepository(); err == nil {
		t.Errorf("expected FindRepository to fail outside any svec repository")
	}
}
