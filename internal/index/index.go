// Package index implements the Index Manager's add operation (spec
// §4.4). Removal lives in internal/rmplan, since its safety rules are a
// distinct, more elaborate component (spec §4.7).
package index

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kassahun-b/svec/core"
	"github.com/kassahun-b/svec/internal/store"
)

// Add stages paths into the index. For each path:
//   - if it exists as a regular file in the working tree, its content
//     replaces (or creates) the index entry under its base name;
//   - if it is absent from the working tree but present in the index,
//     it is removed from the index — this is how add stages a deletion;
//   - directories and names missing from both are rejected.
func Add(repo *core.Repository, st *store.State, paths []string) error {
	for _, p := range paths {
		name := filepath.Base(p)
		if err := core.ValidateFileName(name); err != nil {
			return err
		}

		full := filepath.Join(repo.Root, p)
		info, statErr := os.Lstat(full)
		switch {
		case statErr == nil && info.Mode().IsRegular():
			content, err := core.ReadFileContent(full)
			if err != nil {
				return err
			}
			st.Index[name] = append(store.Blob(nil), content...)

		case statErr == nil && info.IsDir():
			return fmt.Errorf("%s: %w", p, core.ErrNotRegular)

		default:
			if _, tracked := st.Index[name]; tracked {
				delete(st.Index, name)
				continue
			}
			return fmt.Errorf("%s: %w", p, core.ErrMissingFile)
		}
	}
	return nil
}
