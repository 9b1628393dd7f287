// Package editor defines EditorContract, the sink state machine the
// tree-delta engine drives (spec.md §4.2, §4.3), plus two reference
// implementations: TreeBuilder, which assembles an in-memory node graph,
// and WireEncoder, which serializes the same call stream to a simple
// length-prefixed binary log. Neither implementation is required by the
// core; they exist to give the contract concrete, testable consumers, the
// same way the teacher's FileSystem contract has both a local and a
// mountable implementation.
package editor

import "io"

// Baton is the opaque per-node handle a Replace/Add call returns and every
// subsequent call on that node is fed back. The core never inspects it; it
// only threads it through.
type Baton any

// TextDeltaWindow is one chunk of a content delta. A nil window passed to a
// TextDeltaHandler terminates the stream for that file, per spec.md's
// "zero or more handler calls terminated by a final handler call with a
// null window."
type TextDeltaWindow struct {
	// Data is this window's payload: new bytes to append to the
	// reconstructed target content. The engine does not specify a binary
	// delta format beyond "diffing the ancestor content stream against the
	// target content stream"; Editor implementations that need a real
	// byte-level diff format plug it in here.
	Data []byte
}

// TextDeltaHandler consumes one window of a file's content delta. The
// engine calls it repeatedly and finally with a nil window to signal
// completion.
type TextDeltaHandler func(window *TextDeltaWindow) error

// Editor is the sink TreeDelta drives. Its states are Root, Dir, and File,
// with the transitions documented in spec.md §4.2. Implementations must be
// single-threaded for the duration of one tree-delta invocation; every
// opened node must be closed exactly once, in strict LIFO order.
type Editor interface {
	// ReplaceRoot is the only Root -> Dir transition.
	ReplaceRoot() (Baton, error)

	// ReplaceDirectory opens an existing directory entry for editing.
	// ancestorPath/ancestorRev name the node chosen as the replace's base;
	// ancestorPath == "" means no ancestor was found.
	ReplaceDirectory(parent Baton, name string, ancestorPath string, ancestorRev int64) (Baton, error)
	// AddDirectory opens a brand-new directory entry.
	AddDirectory(parent Baton, name string) (Baton, error)

	// ReplaceFile opens an existing file entry for editing.
	ReplaceFile(parent Baton, name string, ancestorPath string, ancestorRev int64) (Baton, error)
	// AddFile opens a brand-new file entry.
	AddFile(parent Baton, name string) (Baton, error)

	// Delete removes name from the directory identified by parent.
	Delete(parent Baton, name string) error

	// ChangeDirProp changes a property on the open directory identified by
	// dir. value == nil means the property is being deleted.
	ChangeDirProp(dir Baton, name string, value []byte) error
	// ChangeDirentProp changes a per-entry property of a child of dir,
	// named entryName, before any structural change to that child is
	// emitted.
	ChangeDirentProp(dir Baton, entryName string, name string, value []byte) error
	// ChangeFileProp changes a property on the open file identified by
	// file. value == nil means the property is being deleted.
	ChangeFileProp(file Baton, name string, value []byte) error

	// ApplyTextDelta opens a content-delta stream for the open file
	// identified by file and returns the handler that consumes its
	// windows.
	ApplyTextDelta(file Baton) (TextDeltaHandler, error)

	// CloseFile pops the File state for file. Must be called after the
	// handler from ApplyTextDelta (if any) received its terminating nil
	// window.
	CloseFile(file Baton) error
	// CloseDirectory pops the Dir state for dir. Must match the LIFO open
	// order: the most recently opened, not-yet-closed directory or file is
	// always the one the next Close* call must target.
	CloseDirectory(dir Baton) error
}

// Closer is implemented by Editors that hold a resource (e.g. an output
// stream) beyond the lifetime of a single tree-delta invocation.
type Closer interface {
	io.Closer
}
