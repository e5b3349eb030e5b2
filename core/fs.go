package core

import (
	"os"
	"path/filepath"
)

// FileExists reports whether path exists, regardless of type.
func FileExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// IsRegularFile reports whether path exists and is a regular file (not a
// directory, symlink, device, etc).
func IsRegularFile(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadFileContent reads the full contents of a regular file.
func ReadFileContent(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFileContent writes content to path, creating or truncating it.
func WriteFileContent(path string, content []byte) error {
	return os.WriteFile(path, content, 0o644)
}

// WorkingTreeFiles lists the flat, top-level regular files tracked by the
// working tree (the .svec directory itself is never included; svec has no
// subdirectory tracking, per spec).
func (r *Repository) WorkingTreeFiles() (map[string][]byte, error) {
	entries, err := os.ReadDir(r.Root)
	if err != nil {
		return nil, err
	}
	files := make(map[string][]byte)
	for _, entry := range entries {
		if entry.Name() == DirName {
			continue
		}
		if entry.IsDir() {
			continue
		}
		if entry.Type()&os.ModeSymlink != 0 {
			continue
		}
		path := filepath.Join(r.Root, entry.Name())
		content, err := ReadFileContent(path)
		if err != nil {
			return nil, err
		}
		files[entry.Name()] = content
	}
	return files, nil
}

// WorkingTreeHas reports whether name is present as a regular file at the
// top level of the working tree.
func (r *Repository) WorkingTreeHas(name string) bool {
	return IsRegularFile(filepath.Join(r.Root, name))
}

// WorkingTreeRead reads a single tracked file's content from the working
// tree.
func (r *Repository) WorkingTreeRead(name string) ([]byte, error) {
	return ReadFileContent(filepath.Join(r.Root, name))
}

// WorkingTreeWrite writes content to name at the top level of the working
// tree.
func (r *Repository) WorkingTreeWrite(name string, content []byte) error {
	return WriteFileContent(filepath.Join(r.Root, name), content)
}

// WorkingTreeRemove deletes name from the top level of the working tree.
// It is not an error for the file to already be absent.
func (r *Repository) WorkingTreeRemove(name string) error {
	err := os.Remove(filepath.Join(r.Root, name))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
