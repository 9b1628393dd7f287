package editor_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldiety/vfspath/delta"
	"github.com/worldiety/vfspath/editor"
)

func TestTreeBuilderDirectCalls(t *testing.T) {
	var tb editor.TreeBuilder

	root, err := tb.ReplaceRoot()
	require.NoError(t, err)

	dirBaton, err := tb.AddDirectory(root, "a")
	require.NoError(t, err)
	require.NoError(t, tb.ChangeDirProp(dirBaton, "svn:ignore", []byte("*.o")))
	require.NoError(t, tb.ChangeDirentProp(dirBaton, "x", "svn:keywords", []byte("Id")))

	fileBaton, err := tb.AddFile(dirBaton, "x")
	require.NoError(t, err)
	require.NoError(t, tb.ChangeFileProp(fileBaton, "svn:eol-style", []byte("LF")))

	handler, err := tb.ApplyTextDelta(fileBaton)
	require.NoError(t, err)
	require.NoError(t, handler(&editor.TextDeltaWindow{Data: []byte("hello, ")}))
	require.NoError(t, handler(&editor.TextDeltaWindow{Data: []byte("world")}))
	require.NoError(t, handler(nil))

	require.NoError(t, tb.CloseFile(fileBaton))
	require.NoError(t, tb.CloseDirectory(dirBaton))
	require.NoError(t, tb.CloseDirectory(root))

	a := tb.Root.ChildByName("a")
	require.NotNil(t, a)
	assert.True(t, a.IsDir)
	assert.Equal(t, []byte("*.o"), a.Properties["svn:ignore"])
	assert.Equal(t, []byte("Id"), a.EntryProps["x"]["svn:keywords"])

	x := a.ChildByName("x")
	require.NotNil(t, x)
	assert.False(t, x.IsDir)
	assert.Equal(t, []byte("LF"), x.Properties["svn:eol-style"])
	assert.Equal(t, []byte("hello, world"), x.Content)
	assert.NotEqual(t, a.ID, x.ID)
}

func TestTreeBuilderReplaceDiscardsPriorChild(t *testing.T) {
	var tb editor.TreeBuilder
	root, err := tb.ReplaceRoot()
	require.NoError(t, err)

	first, err := tb.AddFile(root, "a")
	require.NoError(t, err)
	handler, err := tb.ApplyTextDelta(first)
	require.NoError(t, err)
	require.NoError(t, handler(&editor.TextDeltaWindow{Data: []byte("v1")}))
	require.NoError(t, handler(nil))
	require.NoError(t, tb.CloseFile(first))

	second, err := tb.ReplaceFile(root, "a", "a", 1)
	require.NoError(t, err)
	handler, err = tb.ApplyTextDelta(second)
	require.NoError(t, err)
	require.NoError(t, handler(&editor.TextDeltaWindow{Data: []byte("v2")}))
	require.NoError(t, handler(nil))
	require.NoError(t, tb.CloseFile(second))
	require.NoError(t, tb.CloseDirectory(root))

	assert.Len(t, tb.Root.Children, 1)
	assert.Equal(t, []byte("v2"), tb.Root.ChildByName("a").Content)
}

func TestTreeBuilderInvalidBatonErrors(t *testing.T) {
	var tb editor.TreeBuilder
	_, err := tb.ReplaceRoot()
	require.NoError(t, err)

	_, err = tb.AddFile("not-a-node", "x")
	assert.Error(t, err)

	err = tb.CloseFile("not-a-node")
	assert.Error(t, err)
}

// fakeIdentity and fakeNode give TreeBuilder a real tree-delta run to
// assemble, exercising it the way delta.Run drives any Editor.
type fakeIdentity struct{ id string }

func (f fakeIdentity) Equal(other delta.NodeIdentity) bool {
	o, ok := other.(fakeIdentity)
	return ok && o.id == f.id
}

func (f fakeIdentity) Distance(other delta.NodeIdentity) (int, bool) {
	o, ok := other.(fakeIdentity)
	if !ok {
		return 0, false
	}
	if f.id == o.id {
		return 0, true
	}
	return 1, true
}

type fakeNode struct {
	kind     delta.NodeKind
	id       string
	props    delta.PropertyList
	content  []byte
	children map[string]*fakeNode
	order    []string
}

func fakeDir(id string, children map[string]*fakeNode) *fakeNode {
	order := make([]string, 0, len(children))
	for name := range children {
		order = append(order, name)
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && order[j] < order[j-1]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	return &fakeNode{kind: delta.Dir, id: id, children: children, order: order}
}

func fakeFile(id, content string) *fakeNode {
	return &fakeNode{kind: delta.File, id: id, content: []byte(content)}
}

func (n *fakeNode) Kind() delta.NodeKind                   { return n.kind }
func (n *fakeNode) Identity() delta.NodeIdentity            { return fakeIdentity{n.id} }
func (n *fakeNode) Properties() (delta.PropertyList, error) { return n.props, nil }

func (n *fakeNode) Children() ([]delta.DirEntry, error) {
	entries := make([]delta.DirEntry, len(n.order))
	for i, name := range n.order {
		c := n.children[name]
		entries[i] = delta.DirEntry{Name: name, Kind: c.kind, Identity: fakeIdentity{c.id}}
	}
	return entries, nil
}

func (n *fakeNode) Child(name string) (delta.NodeSnapshot, error) { return n.children[name], nil }
func (n *fakeNode) Content() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(n.content)), nil
}
func (n *fakeNode) Release() {}

func TestTreeBuilderAssemblesTreeFromDeltaRun(t *testing.T) {
	target := fakeDir("root", map[string]*fakeNode{
		"docs": fakeDir("docs", map[string]*fakeNode{
			"readme": fakeFile("readme", "hello"),
		}),
		"main.go": fakeFile("main.go", "package main"),
	})

	var tb editor.TreeBuilder
	require.NoError(t, delta.Run(&tb, nil, target, delta.Options{}))

	docs := tb.Root.ChildByName("docs")
	require.NotNil(t, docs)
	assert.True(t, docs.IsDir)
	readme := docs.ChildByName("readme")
	require.NotNil(t, readme)
	assert.Equal(t, []byte("hello"), readme.Content)

	main := tb.Root.ChildByName("main.go")
	require.NotNil(t, main)
	assert.Equal(t, []byte("package main"), main.Content)
}
