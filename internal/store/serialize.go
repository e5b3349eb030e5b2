package store

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// stateMagic tags the on-disk format so a foreign file is rejected
// cleanly instead of producing garbage data.
const stateMagic = "SVS1"

// writeString writes a length-prefixed (uint32, big-endian) UTF-8 string.
func writeString(buf *bytes.Buffer, s string) {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(s)))
	buf.Write(lenBuf[:])
	buf.WriteString(s)
}

// writeBlob writes a length-prefixed (uint32, big-endian) byte slice.
func writeBlob(buf *bytes.Buffer, b []byte) {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(b)))
	buf.Write(lenBuf[:])
	buf.Write(b)
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeInt64(buf *bytes.Buffer, v int64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	buf.Write(b[:])
}

// reader is a small cursor over an in-memory byte slice, used to decode
// the length-prefixed fields written above.
type reader struct {
	data []byte
	pos  int
}

func (r *reader) readString() (string, error) {
	b, err := r.readBlob()
	return string(b), err
}

func (r *reader) readBlob() ([]byte, error) {
	if r.pos+4 > len(r.data) {
		return nil, fmt.Errorf("corrupt state: truncated length prefix")
	}
	n := binary.BigEndian.Uint32(r.data[r.pos : r.pos+4])
	r.pos += 4
	if r.pos+int(n) > len(r.data) {
		return nil, fmt.Errorf("corrupt state: truncated field")
	}
	b := r.data[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return b, nil
}

func (r *reader) readUint32() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, fmt.Errorf("corrupt state: truncated uint32")
	}
	v := binary.BigEndian.Uint32(r.data[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

func (r *reader) readInt64() (int64, error) {
	if r.pos+8 > len(r.data) {
		return 0, fmt.Errorf("corrupt state: truncated int64")
	}
	v := int64(binary.BigEndian.Uint64(r.data[r.pos : r.pos+8]))
	r.pos += 8
	return v, nil
}

// encode serializes the state deterministically: maps are always walked
// in sorted key order, so two States with identical content produce
// byte-identical output (mirrors the upstream lineage's
// sort-before-serialize index format).
func (s *State) encode() []byte {
	var buf bytes.Buffer
	buf.WriteString(stateMagic)
	writeString(&buf, s.CurrentBranch)

	branchNames := make([]string, 0, len(s.Branches))
	for name := range s.Branches {
		branchNames = append(branchNames, name)
	}
	sort.Strings(branchNames)
	writeUint32(&buf, uint32(len(branchNames)))
	for _, name := range branchNames {
		br := s.Branches[name]
		writeString(&buf, br.Name)
		ids := make([]int, 0, len(br.Commits))
		for id := range br.Commits {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		writeUint32(&buf, uint32(len(ids)))
		for _, id := range ids {
			writeUint32(&buf, uint32(id))
		}
	}

	commitIDs := make([]int, 0, len(s.Commits))
	for id := range s.Commits {
		commitIDs = append(commitIDs, id)
	}
	sort.Ints(commitIDs)
	writeUint32(&buf, uint32(len(commitIDs)))
	for _, id := range commitIDs {
		c := s.Commits[id]
		writeUint32(&buf, uint32(c.ID))
		writeString(&buf, c.Message)
		writeString(&buf, c.Author)
		writeInt64(&buf, c.CreatedAt.UnixNano())
		names := make([]string, 0, len(c.Files))
		for name := range c.Files {
			names = append(names, name)
		}
		sort.Strings(names)
		writeUint32(&buf, uint32(len(names)))
		for _, name := range names {
			writeString(&buf, name)
			writeBlob(&buf, c.Files[name])
		}
	}

	indexNames := make([]string, 0, len(s.Index))
	for name := range s.Index {
		indexNames = append(indexNames, name)
	}
	sort.Strings(indexNames)
	writeUint32(&buf, uint32(len(indexNames)))
	for _, name := range indexNames {
		writeString(&buf, name)
		writeBlob(&buf, s.Index[name])
	}

	return buf.Bytes()
}

func decode(data []byte) (*State, error) {
	if len(data) < len(stateMagic) || string(data[:len(stateMagic)]) != stateMagic {
		return nil, fmt.Errorf("corrupt state: bad magic")
	}
	r := &reader{data: data[len(stateMagic):]}
	s := New()

	current, err := r.readString()
	if err != nil {
		return nil, err
	}
	s.CurrentBranch = current

	branchCount, err := r.readUint32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < branchCount; i++ {
		name, err := r.readString()
		if err != nil {
			return nil, err
		}
		idCount, err := r.readUint32()
		if err != nil {
			return nil, err
		}
		commits := make(map[int]struct{}, idCount)
		for j := uint32(0); j < idCount; j++ {
			id, err := r.readUint32()
			if err != nil {
				return nil, err
			}
			commits[int(id)] = struct{}{}
		}
		s.Branches[name] = &Branch{Name: name, Commits: commits}
	}

	commitCount, err := r.readUint32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < commitCount; i++ {
		id, err := r.readUint32()
		if err != nil {
			return nil, err
		}
		message, err := r.readString()
		if err != nil {
			return nil, err
		}
		author, err := r.readString()
		if err != nil {
			return nil, err
		}
		createdAtNano, err := r.readInt64()
		if err != nil {
			return nil, err
		}
		fileCount, err := r.readUint32()
		if err != nil {
			return nil, err
		}
		files := make(map[string]Blob, fileCount)
		for j := uint32(0); j < fileCount; j++ {
			name, err := r.readString()
			if err != nil {
				return nil, err
			}
			content, err := r.readBlob()
			if err != nil {
				return nil, err
			}
			files[name] = append(Blob(nil), content...)
		}
		s.Commits[int(id)] = &Commit{
			ID:        int(id),
			Message:   message,
			Author:    author,
			CreatedAt: time.Unix(0, createdAtNano).UTC(),
			Files:     files,
		}
	}

	indexCount, err := r.readUint32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < indexCount; i++ {
		name, err := r.readString()
		if err != nil {
			return nil, err
		}
		content, err := r.readBlob()
		if err != nil {
			return nil, err
		}
		s.Index[name] = append(Blob(nil), content...)
	}

	return s, nil
}

func statePath(repoRoot string) string {
	return filepath.Join(repoRoot, ".svec", "state")
}

// Load reads and decodes the repository's persisted state.
func Load(repoRoot string) (*State, error) {
	data, err := os.ReadFile(statePath(repoRoot))
	if err != nil {
		return nil, err
	}
	return decode(data)
}

// Save atomically overwrites the repository's persisted state: the new
// content is written to a temporary file in the same directory and then
// renamed into place, so a crash or interrupted write never leaves a
// half-written state file (spec §5's "staging area then swap").
func (s *State) Save(repoRoot string) error {
	path := statePath(repoRoot)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, s.encode(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
