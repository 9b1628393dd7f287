package main

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/worldiety/vfspath/delta"
)

// fsIdentity approximates delta.NodeIdentity for a real filesystem entry
// using the signature a working copy would have to hand anyway: size,
// modification time, and kind. Two entries with an identical signature are
// treated as the same historical node; this is a CLI illustration, not a
// claim that mtime+size is a sound identity scheme in general.
type fsIdentity struct {
	size    int64
	modTime time.Time
	isDir   bool
}

func (i fsIdentity) Equal(other delta.NodeIdentity) bool {
	o, ok := other.(fsIdentity)
	if !ok {
		return false
	}
	return i.isDir == o.isDir && i.size == o.size && i.modTime.Equal(o.modTime)
}

func (i fsIdentity) Distance(other delta.NodeIdentity) (int, bool) {
	o, ok := other.(fsIdentity)
	if !ok || i.isDir != o.isDir {
		return 0, false
	}
	d := i.size - o.size
	if d < 0 {
		d = -d
	}
	return int(d), true
}

// fsSnapshot is a delta.NodeSnapshot backed by a real directory entry on
// disk, rooted at path.
type fsSnapshot struct {
	path string
	info os.FileInfo
}

var _ delta.NodeSnapshot = (*fsSnapshot)(nil)

func newFsSnapshot(path string) (*fsSnapshot, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	return &fsSnapshot{path: path, info: info}, nil
}

func (s *fsSnapshot) Kind() delta.NodeKind {
	if s.info.IsDir() {
		return delta.Dir
	}
	return delta.File
}

func (s *fsSnapshot) Identity() delta.NodeIdentity {
	return fsIdentity{size: s.info.Size(), modTime: s.info.ModTime(), isDir: s.info.IsDir()}
}

func (s *fsSnapshot) Properties() (delta.PropertyList, error) {
	return nil, nil
}

func (s *fsSnapshot) Children() ([]delta.DirEntry, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	out := make([]delta.DirEntry, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		kind := delta.File
		if info.IsDir() {
			kind = delta.Dir
		}
		out = append(out, delta.DirEntry{
			Name:     e.Name(),
			Kind:     kind,
			Identity: fsIdentity{size: info.Size(), modTime: info.ModTime(), isDir: info.IsDir()},
		})
	}
	return out, nil
}

func (s *fsSnapshot) Child(name string) (delta.NodeSnapshot, error) {
	return newFsSnapshot(filepath.Join(s.path, name))
}

func (s *fsSnapshot) Content() (io.ReadCloser, error) {
	return os.Open(s.path)
}

func (s *fsSnapshot) Release() {}
