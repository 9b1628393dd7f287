// Package delta implements the TreeDelta engine: given two immutable
// directory snapshots, it drives an editor.Editor with the minimal stream
// of edit calls that transforms source into target (spec.md §4.2).
package delta

import "io"

// NodeKind distinguishes files from directories.
type NodeKind int

const (
	File NodeKind = iota
	Dir
)

func (k NodeKind) String() string {
	if k == Dir {
		return "dir"
	}
	return "file"
}

// NodeIdentity is an opaque token identifying a historical versioned node.
// Equal identity implies equal content and properties.
type NodeIdentity interface {
	// Equal reports whether two identities refer to the same historical
	// node.
	Equal(other NodeIdentity) bool
	// Distance returns a non-negative heuristic proxy for delta size
	// between two related nodes, and ok=false if the pair is considered
	// entirely unrelated (the "unrelated" sentinel in spec.md §4.2).
	Distance(other NodeIdentity) (distance int, ok bool)
}

// DirEntry is one child listed by a NodeSnapshot: a name, a kind, and an
// opaque node identity. Entry names must sort under a total order; the
// engine relies on NodeSnapshot.Children returning entries pre-sorted by
// that order.
type DirEntry struct {
	Name     string
	Kind     NodeKind
	Identity NodeIdentity
	// EntryProperties holds the per-dirent properties attached to this
	// directory entry itself (distinct from the node's own Properties),
	// the svn "entry property" concept: diffed and surfaced via
	// Editor.ChangeDirentProp before any structural change to the entry.
	EntryProperties PropertyList
}

// PropertyList is a versioned node's property set, keyed by property name.
// nil and an empty map are equivalent: "no properties".
type PropertyList map[string][]byte

// NodeSnapshot is an opaque, reference-counted handle onto an immutable
// directory or file at some revision. The engine never mutates a
// NodeSnapshot; it releases every handle it opens before returning.
type NodeSnapshot interface {
	// Kind reports whether this snapshot is a file or a directory.
	Kind() NodeKind
	// Identity returns this node's opaque identity token.
	Identity() NodeIdentity
	// Properties returns this node's property list.
	Properties() (PropertyList, error)
	// Children returns this directory's children, sorted by DirEntry.Name
	// under the entry-name total order. Calling Children on a file
	// snapshot is a programming error.
	Children() ([]DirEntry, error)
	// Child opens the named child of this directory. The caller releases
	// the returned handle.
	Child(name string) (NodeSnapshot, error)
	// Content opens this file's content as a byte stream. Calling Content
	// on a directory snapshot is a programming error. The caller closes
	// the returned stream.
	Content() (io.ReadCloser, error)
	// Release releases this handle. It is safe to call more than once.
	Release()
}

// CancelFunc is the optional cancellation query invoked at every directory
// boundary and before every content-delta window, per spec.md §5.
type CancelFunc func() bool

// TextDiffer produces the content-delta windows for a changed file, given
// the ancestor content (nil if none) and the target content stream. It is
// the seam where an external byte-level text-diff implementation plugs in
// (spec.md §1 excludes text-diff generation as an external collaborator);
// the default used by Run is DiffWhole, which emits the target content as
// a single window with no ancestor-aware delta compression.
type TextDiffer func(ancestor io.Reader, target io.Reader) ([][]byte, error)
