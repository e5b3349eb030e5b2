// Package core locates and initializes svec repositories on disk.
package core

import (
	"os"
	"path/filepath"

	"github.com/kassahun-b/svec/internal/store"
)

// DirName is the name of the directory svec stores its state in, analogous
// to .git.
const DirName = ".svec"

// TrunkBranch is the default branch created by Init. It is reserved: it
// can never be deleted.
const TrunkBranch = "trunk"

// RepoPathEnv overrides repository discovery, mirroring the upstream
// lineage's VEC_REPOSITORY_PATH escape hatch (useful for tests and for
// running svec against a repository that isn't the working directory).
const RepoPathEnv = "SVEC_REPOSITORY_PATH"

// Repository is a handle on an initialized svec repository.
type Repository struct {
	Root string
}

// dirPath returns the path to the repository's .svec directory.
func (r *Repository) dirPath() string {
	return filepath.Join(r.Root, DirName)
}

// StatePath returns the path to the serialized repository state.
func (r *Repository) StatePath() string {
	return filepath.Join(r.dirPath(), "state")
}

// ConfigPath returns the path to the local config file.
func (r *Repository) ConfigPath() string {
	return filepath.Join(r.dirPath(), "config")
}

// FindRepository walks upward from the current working directory looking
// for a .svec directory, the same way the upstream lineage's GetVecRoot
// does (including the environment override for out-of-tree invocation).
func FindRepository() (*Repository, error) {
	if override := os.Getenv(RepoPathEnv); override != "" {
		if FileExists(filepath.Join(override, DirName)) {
			return &Repository{Root: override}, nil
		}
	}

	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	for {
		if FileExists(filepath.Join(dir, DirName)) {
			return &Repository{Root: dir}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrNotInitialized
		}
		dir = parent
	}
}

// Init creates a new repository rooted at dir. It fails if one already
// exists there.
func Init(dir string) (*Repository, error) {
	repo := &Repository{Root: dir}
	if FileExists(repo.dirPath()) {
		return nil, &RepositoryExistsError{Path: dir}
	}
	if err := os.MkdirAll(repo.dirPath(), 0o755); err != nil {
		return nil, err
	}

	s := store.New()
	s.Branches[TrunkBranch] = &store.Branch{Name: TrunkBranch, Commits: map[int]struct{}{}}
	s.CurrentBranch = TrunkBranch
	if err := s.Save(repo.Root); err != nil {
		return nil, err
	}
	return repo, nil
}

// LoadState reads the repository's current state from disk.
func (r *Repository) LoadState() (*store.State, error) {
	return store.Load(r.Root)
}

// SaveState persists st atomically as the repository's new state.
func (r *Repository) SaveState(st *store.State) error {
	return st.Save(r.Root)
}
