package diffview

import (
	"strings"
	"testing"
)

func TestRenderIdenticalContentIsEmpty(t *testing.T) {
	out := Render("a.txt", Label{Side: Index}, Label{Side: Working}, []byte("same"), []byte("same"), true, true)
	if out != "" {
		t.Errorf("Render for identical content = %q, want empty string", out)
	}
}

func TestRenderBothAbsentIsEmpty(t *testing.T) {
	out := Render("a.txt", Label{Side: Index}, Label{Side: Working}, nil, nil, false, false)
	if out != "" {
		t.Errorf("Render for a path absent on both sides = %q, want empty string", out)
	}
}

func TestRenderNewFile(t *testing.T) {
	out := Render("a.txt", Label{Side: Index}, Label{Side: Working}, nil, []byte("hello"), false, true)
	if out == "" {
		t.Fatalf("expected Render to produce output for a new file")
	}
	if !strings.Contains(out, "new file: a.txt") {
		t.Errorf("Render output missing new-file marker: %q", out)
	}
	if !strings.Contains(out, "+hello") {
		t.Errorf("Render output missing added line: %q", out)
	}
}

func TestRenderDeletedFile(t *testing.T) {
	out := Render("a.txt", Label{Side: Commit, Ref: "0"}, Label{Side: Working}, []byte("gone"), nil, true, false)
	if !strings.Contains(out, "deleted file: a.txt") {
		t.Errorf("Render output missing deleted-file marker: %q", out)
	}
	if !strings.Contains(out, "-gone") {
		t.Errorf("Render output missing removed line: %q", out)
	}
}

func TestLabelString(t *testing.T) {
	if got := (Label{Side: Working}).String(); got != "working tree" {
		t.Errorf("Label{Working}.String() = %q, want working tree", got)
	}
	if got := (Label{Side: Commit, Ref: "3"}).String(); got != "commit@3" {
		t.Errorf("Label{Commit, 3}.String() = %q, want commit@3", got)
	}
}
