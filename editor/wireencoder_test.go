package editor_test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldiety/vfspath/editor"
)

// The wire opcodes below mirror editor.opcode's unexported const block
// (declared in wireencoder.go) so this external test package can decode
// the log without access to the unexported constants.
const (
	wireOpReplaceRoot byte = iota + 1
	wireOpReplaceDirectory
	wireOpAddDirectory
	wireOpReplaceFile
	wireOpAddFile
	wireOpDelete
	wireOpChangeDirProp
	wireOpChangeDirentProp
	wireOpChangeFileProp
	wireOpTextDeltaWindow
	wireOpTextDeltaEnd
	wireOpCloseFile
	wireOpCloseDirectory
)

// wireDecoder turns a WireEncoder log back into one readable line per call,
// for tests that care about call shape rather than exact byte offsets.
type wireDecoder struct {
	buf []byte
	pos int
}

func (d *wireDecoder) byte() byte {
	b := d.buf[d.pos]
	d.pos++
	return b
}

func (d *wireDecoder) u64() uint64 {
	v := binary.BigEndian.Uint64(d.buf[d.pos:])
	d.pos += 8
	return v
}

func (d *wireDecoder) bytes() []byte {
	n := d.u64()
	b := d.buf[d.pos : d.pos+int(n)]
	d.pos += int(n)
	return b
}

func (d *wireDecoder) string() string { return string(d.bytes()) }

func (d *wireDecoder) optBytes() []byte {
	present := d.u64()
	if present == 0 {
		d.byte() // the padding byte writeOptBytes emits for the absent case
		return nil
	}
	return d.bytes()
}

func (d *wireDecoder) done() bool { return d.pos >= len(d.buf) }

func decodeWire(t *testing.T, buf []byte) []string {
	t.Helper()
	d := &wireDecoder{buf: buf}
	var lines []string
	for !d.done() {
		switch op := d.byte(); op {
		case wireOpReplaceRoot:
			lines = append(lines, fmt.Sprintf("replace_root h=%d", d.u64()))
		case wireOpReplaceDirectory:
			p, h := d.u64(), d.u64()
			name := d.string()
			ancestor := d.string()
			rev := d.u64()
			lines = append(lines, fmt.Sprintf("replace_directory p=%d h=%d name=%q ancestor=%q@%d", p, h, name, ancestor, rev))
		case wireOpAddDirectory:
			p, h := d.u64(), d.u64()
			lines = append(lines, fmt.Sprintf("add_directory p=%d h=%d name=%q", p, h, d.string()))
		case wireOpReplaceFile:
			p, h := d.u64(), d.u64()
			name := d.string()
			ancestor := d.string()
			rev := d.u64()
			lines = append(lines, fmt.Sprintf("replace_file p=%d h=%d name=%q ancestor=%q@%d", p, h, name, ancestor, rev))
		case wireOpAddFile:
			p, h := d.u64(), d.u64()
			lines = append(lines, fmt.Sprintf("add_file p=%d h=%d name=%q", p, h, d.string()))
		case wireOpDelete:
			p := d.u64()
			lines = append(lines, fmt.Sprintf("delete p=%d name=%q", p, d.string()))
		case wireOpChangeDirProp:
			dID := d.u64()
			name := d.string()
			lines = append(lines, fmt.Sprintf("change_dir_prop d=%d name=%q value=%q", dID, name, d.optBytes()))
		case wireOpChangeDirentProp:
			dID := d.u64()
			entry := d.string()
			name := d.string()
			lines = append(lines, fmt.Sprintf("change_dirent_prop d=%d entry=%q name=%q value=%q", dID, entry, name, d.optBytes()))
		case wireOpChangeFileProp:
			f := d.u64()
			name := d.string()
			lines = append(lines, fmt.Sprintf("change_file_prop f=%d name=%q value=%q", f, name, d.optBytes()))
		case wireOpTextDeltaWindow:
			f := d.u64()
			lines = append(lines, fmt.Sprintf("text_delta_window f=%d data=%q", f, d.bytes()))
		case wireOpTextDeltaEnd:
			lines = append(lines, fmt.Sprintf("text_delta_end f=%d", d.u64()))
		case wireOpCloseFile:
			lines = append(lines, fmt.Sprintf("close_file f=%d", d.u64()))
		case wireOpCloseDirectory:
			lines = append(lines, fmt.Sprintf("close_directory d=%d", d.u64()))
		default:
			t.Fatalf("unknown wire opcode %d at offset %d", op, d.pos-1)
		}
	}
	return lines
}

func TestWireEncoderReplaceRootWritesOpAndHandle(t *testing.T) {
	var buf bytes.Buffer
	enc := editor.NewWireEncoder(&buf)

	baton, err := enc.ReplaceRoot()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), baton)

	want := []byte{wireOpReplaceRoot}
	var h [8]byte
	binary.BigEndian.PutUint64(h[:], 1)
	want = append(want, h[:]...)
	assert.Equal(t, want, buf.Bytes())
}

func TestWireEncoderFullFileLifecycle(t *testing.T) {
	var buf bytes.Buffer
	enc := editor.NewWireEncoder(&buf)

	root, err := enc.ReplaceRoot()
	require.NoError(t, err)
	fileBaton, err := enc.AddFile(root, "a.txt")
	require.NoError(t, err)
	require.NoError(t, enc.ChangeFileProp(fileBaton, "svn:eol-style", []byte("LF")))
	handler, err := enc.ApplyTextDelta(fileBaton)
	require.NoError(t, err)
	require.NoError(t, handler(&editor.TextDeltaWindow{Data: []byte("hi")}))
	require.NoError(t, handler(nil))
	require.NoError(t, enc.CloseFile(fileBaton))
	require.NoError(t, enc.CloseDirectory(root))

	lines := decodeWire(t, buf.Bytes())
	assert.Equal(t, []string{
		`replace_root h=1`,
		`add_file p=1 h=2 name="a.txt"`,
		`change_file_prop f=2 name="svn:eol-style" value="LF"`,
		`text_delta_window f=2 data="hi"`,
		`text_delta_end f=2`,
		`close_file f=2`,
		`close_directory d=1`,
	}, lines)
}

func TestWireEncoderChangeDirPropDeletionEncodesAbsent(t *testing.T) {
	var buf bytes.Buffer
	enc := editor.NewWireEncoder(&buf)

	root, err := enc.ReplaceRoot()
	require.NoError(t, err)
	require.NoError(t, enc.ChangeDirProp(root, "svn:ignore", nil))
	require.NoError(t, enc.CloseDirectory(root))

	lines := decodeWire(t, buf.Bytes())
	assert.Equal(t, []string{
		`replace_root h=1`,
		`change_dir_prop d=1 name="svn:ignore" value=""`,
		`close_directory d=1`,
	}, lines)
}

func TestWireEncoderDirectoryLifecycleAndDelete(t *testing.T) {
	var buf bytes.Buffer
	enc := editor.NewWireEncoder(&buf)

	root, err := enc.ReplaceRoot()
	require.NoError(t, err)
	sub, err := enc.AddDirectory(root, "sub")
	require.NoError(t, err)
	require.NoError(t, enc.CloseDirectory(sub))

	replaced, err := enc.ReplaceDirectory(root, "sub", "sub", 7)
	require.NoError(t, err)
	require.NoError(t, enc.ChangeDirentProp(replaced, "x", "svn:keywords", []byte("Id")))
	require.NoError(t, enc.Delete(replaced, "x"))
	require.NoError(t, enc.CloseDirectory(replaced))
	require.NoError(t, enc.CloseDirectory(root))

	lines := decodeWire(t, buf.Bytes())
	assert.Equal(t, []string{
		`replace_root h=1`,
		`add_directory p=1 h=2 name="sub"`,
		`close_directory d=2`,
		`replace_directory p=1 h=3 name="sub" ancestor="sub"@7`,
		`change_dirent_prop d=3 entry="x" name="svn:keywords" value="Id"`,
		`delete p=3 name="x"`,
		`close_directory d=3`,
		`close_directory d=1`,
	}, lines)
}

func TestWireEncoderInvalidBatonErrors(t *testing.T) {
	var buf bytes.Buffer
	enc := editor.NewWireEncoder(&buf)
	_, err := enc.AddFile("not-a-handle", "x")
	assert.Error(t, err)
}
