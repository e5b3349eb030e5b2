// Package diffview renders a unified-style, line-based diff between any
// two named snapshots of a file: the working tree, the index, or a
// commit. It is purely for display — nothing here feeds back into the
// index, a commit, or a merge.
package diffview

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Side names a source a file's content can be read from.
type Side string

const (
	Working Side = "working tree"
	Index   Side = "index"
	Commit  Side = "commit"
)

// Label describes one side of a comparison for the "--- a/..." and
// "+++ b/..." lines.
type Label struct {
	Side Side
	Ref  string // commit id as a string, or "" for working tree/index
}

func (l Label) String() string {
	if l.Ref == "" {
		return string(l.Side)
	}
	return fmt.Sprintf("%s@%s", l.Side, l.Ref)
}

// Render returns a unified diff of oldContent -> newContent, or "" if
// they are identical. oldPresent/newPresent false means the path is
// absent on that side (added or deleted).
func Render(name string, from Label, to Label, oldContent, newContent []byte, oldPresent, newPresent bool) string {
	if !oldPresent && !newPresent {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "diff --svec a/%s b/%s\n", name, name)

	switch {
	case !oldPresent:
		fmt.Fprintf(&b, "new file: %s\n", name)
		fmt.Fprintf(&b, "--- /dev/null\n+++ b/%s (%s)\n", name, to)
		writeHunk(&b, "", string(newContent))
		return b.String()

	case !newPresent:
		fmt.Fprintf(&b, "deleted file: %s\n", name)
		fmt.Fprintf(&b, "--- a/%s (%s)\n+++ /dev/null\n", name, from)
		writeHunk(&b, string(oldContent), "")
		return b.String()

	default:
		if string(oldContent) == string(newContent) {
			return ""
		}
		fmt.Fprintf(&b, "--- a/%s (%s)\n+++ b/%s (%s)\n", name, from, name, to)
		writeHunk(&b, string(oldContent), string(newContent))
		return b.String()
	}
}

// writeHunk emits a minimal +/- line listing derived from a
// character-level diff collapsed to whole lines — close enough to a
// real unified diff for a human to read, without reimplementing a line
// patience-diff algorithm.
func writeHunk(b *strings.Builder, oldText, newText string) {
	dmp := diffmatchpatch.New()
	oldChars, newChars, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(oldChars, newChars, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	for _, d := range diffs {
		lines := strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n")
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		default:
			prefix = " "
		}
		for _, line := range lines {
			fmt.Fprintf(b, "%s%s\n", prefix, line)
		}
	}
}
