package editor

import (
	"encoding/binary"
	"fmt"
	"io"
)

// opcode tags each call in WireEncoder's log, in the order they appear
// below.
type opcode byte

const (
	opReplaceRoot opcode = iota + 1
	opReplaceDirectory
	opAddDirectory
	opReplaceFile
	opAddFile
	opDelete
	opChangeDirProp
	opChangeDirentProp
	opChangeFileProp
	opTextDeltaWindow
	opTextDeltaEnd
	opCloseFile
	opCloseDirectory
)

// WireEncoder is a reference Editor that forwards the call stream to a
// length-prefixed binary log instead of building an in-memory tree,
// illustrating spec.md §4.3's "another forwards to a wire serializer."
// Each Baton is an incrementing uint64 handle rather than a pointer, since
// nothing survives the wire.
type WireEncoder struct {
	w        io.Writer
	nextID   uint64
	err      error
}

var _ Editor = (*WireEncoder)(nil)

// NewWireEncoder returns a WireEncoder writing its log to w.
func NewWireEncoder(w io.Writer) *WireEncoder {
	return &WireEncoder{w: w, nextID: 1}
}

func (e *WireEncoder) newHandle() Baton {
	id := e.nextID
	e.nextID++
	return id
}

func handleOf(b Baton) (uint64, error) {
	id, ok := b.(uint64)
	if !ok {
		return 0, fmt.Errorf("editor: invalid wire baton %v", b)
	}
	return id, nil
}

func (e *WireEncoder) writeOp(op opcode) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write([]byte{byte(op)})
}

func (e *WireEncoder) writeU64(v uint64) {
	if e.err != nil {
		return
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	_, e.err = e.w.Write(buf[:])
}

func (e *WireEncoder) writeBytes(b []byte) {
	if e.err != nil {
		return
	}
	e.writeU64(uint64(len(b)))
	if len(b) == 0 {
		return
	}
	_, e.err = e.w.Write(b)
}

func (e *WireEncoder) writeOptBytes(b []byte) {
	if e.err != nil {
		return
	}
	if b == nil {
		e.writeU64(0)
		_, e.err = e.w.Write([]byte{0})
		return
	}
	e.writeU64(1)
	e.writeBytes(b)
}

func (e *WireEncoder) writeString(s string) {
	e.writeBytes([]byte(s))
}

func (e *WireEncoder) ReplaceRoot() (Baton, error) {
	h := e.newHandle()
	e.writeOp(opReplaceRoot)
	e.writeU64(h.(uint64))
	return h, e.err
}

func (e *WireEncoder) ReplaceDirectory(parent Baton, name, ancestorPath string, ancestorRev int64) (Baton, error) {
	p, err := handleOf(parent)
	if err != nil {
		return nil, err
	}
	h := e.newHandle()
	e.writeOp(opReplaceDirectory)
	e.writeU64(p)
	e.writeU64(h.(uint64))
	e.writeString(name)
	e.writeString(ancestorPath)
	e.writeU64(uint64(ancestorRev))
	return h, e.err
}

func (e *WireEncoder) AddDirectory(parent Baton, name string) (Baton, error) {
	p, err := handleOf(parent)
	if err != nil {
		return nil, err
	}
	h := e.newHandle()
	e.writeOp(opAddDirectory)
	e.writeU64(p)
	e.writeU64(h.(uint64))
	e.writeString(name)
	return h, e.err
}

func (e *WireEncoder) ReplaceFile(parent Baton, name, ancestorPath string, ancestorRev int64) (Baton, error) {
	p, err := handleOf(parent)
	if err != nil {
		return nil, err
	}
	h := e.newHandle()
	e.writeOp(opReplaceFile)
	e.writeU64(p)
	e.writeU64(h.(uint64))
	e.writeString(name)
	e.writeString(ancestorPath)
	e.writeU64(uint64(ancestorRev))
	return h, e.err
}

func (e *WireEncoder) AddFile(parent Baton, name string) (Baton, error) {
	p, err := handleOf(parent)
	if err != nil {
		return nil, err
	}
	h := e.newHandle()
	e.writeOp(opAddFile)
	e.writeU64(p)
	e.writeU64(h.(uint64))
	e.writeString(name)
	return h, e.err
}

func (e *WireEncoder) Delete(parent Baton, name string) error {
	p, err := handleOf(parent)
	if err != nil {
		return err
	}
	e.writeOp(opDelete)
	e.writeU64(p)
	e.writeString(name)
	return e.err
}

func (e *WireEncoder) ChangeDirProp(dir Baton, name string, value []byte) error {
	d, err := handleOf(dir)
	if err != nil {
		return err
	}
	e.writeOp(opChangeDirProp)
	e.writeU64(d)
	e.writeString(name)
	e.writeOptBytes(value)
	return e.err
}

func (e *WireEncoder) ChangeDirentProp(dir Baton, entryName, name string, value []byte) error {
	d, err := handleOf(dir)
	if err != nil {
		return err
	}
	e.writeOp(opChangeDirentProp)
	e.writeU64(d)
	e.writeString(entryName)
	e.writeString(name)
	e.writeOptBytes(value)
	return e.err
}

func (e *WireEncoder) ChangeFileProp(file Baton, name string, value []byte) error {
	f, err := handleOf(file)
	if err != nil {
		return err
	}
	e.writeOp(opChangeFileProp)
	e.writeU64(f)
	e.writeString(name)
	e.writeOptBytes(value)
	return e.err
}

func (e *WireEncoder) ApplyTextDelta(file Baton) (TextDeltaHandler, error) {
	f, err := handleOf(file)
	if err != nil {
		return nil, err
	}
	return func(window *TextDeltaWindow) error {
		if window == nil {
			e.writeOp(opTextDeltaEnd)
			e.writeU64(f)
			return e.err
		}
		e.writeOp(opTextDeltaWindow)
		e.writeU64(f)
		e.writeBytes(window.Data)
		return e.err
	}, nil
}

func (e *WireEncoder) CloseFile(file Baton) error {
	f, err := handleOf(file)
	if err != nil {
		return err
	}
	e.writeOp(opCloseFile)
	e.writeU64(f)
	return e.err
}

func (e *WireEncoder) CloseDirectory(dir Baton) error {
	d, err := handleOf(dir)
	if err != nil {
		return err
	}
	e.writeOp(opCloseDirectory)
	e.writeU64(d)
	return e.err
}
