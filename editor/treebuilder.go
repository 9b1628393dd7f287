package editor

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Node is one entry in the in-memory tree TreeBuilder assembles: either a
// directory (Children non-nil) or a file. Child ownership is parent-owned
// (a slice, not a pointer graph); Parent is a non-owning back-reference,
// following Design Notes' "prefer arena+index or parent-owned child
// vectors over reference-cycle-prone shared ownership."
type Node struct {
	Name       string
	IsDir      bool
	Properties map[string][]byte
	EntryProps map[string]map[string][]byte // per-child properties, keyed by child name
	Content    []byte
	Children   []*Node
	Parent     *Node
	ID         uuid.UUID
}

// ChildByName returns the named child, or nil.
func (n *Node) ChildByName(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (n *Node) removeChild(name string) {
	for i, c := range n.Children {
		if c.Name == name {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return
		}
	}
}

// SortedChildren returns the node's children sorted by name, matching the
// entry-name comparator order the engine relies on.
func (n *Node) SortedChildren() []*Node {
	out := make([]*Node, len(n.Children))
	copy(out, n.Children)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// TreeBuilder is a reference Editor that assembles an in-memory node graph,
// grounded on the teacher's MountableFileSystem virtualDir/namedEntry tree
// (dp_mountablefilesystem.go), generalized from "mounted filesystems" to
// "versioned tree nodes."
type TreeBuilder struct {
	Root *Node
}

var _ Editor = (*TreeBuilder)(nil)

func newNode(parent *Node, name string, isDir bool) *Node {
	return &Node{
		Name:       name,
		IsDir:      isDir,
		Parent:     parent,
		Properties: make(map[string][]byte),
		EntryProps: make(map[string]map[string][]byte),
		ID:         uuid.New(),
	}
}

func (t *TreeBuilder) ReplaceRoot() (Baton, error) {
	t.Root = newNode(nil, "", true)
	return t.Root, nil
}

func asNode(b Baton) (*Node, error) {
	n, ok := b.(*Node)
	if !ok || n == nil {
		return nil, fmt.Errorf("editor: invalid baton %v", b)
	}
	return n, nil
}

func (t *TreeBuilder) ReplaceDirectory(parent Baton, name string, _ string, _ int64) (Baton, error) {
	p, err := asNode(parent)
	if err != nil {
		return nil, err
	}
	p.removeChild(name)
	child := newNode(p, name, true)
	p.Children = append(p.Children, child)
	return child, nil
}

func (t *TreeBuilder) AddDirectory(parent Baton, name string) (Baton, error) {
	return t.ReplaceDirectory(parent, name, "", 0)
}

func (t *TreeBuilder) ReplaceFile(parent Baton, name string, _ string, _ int64) (Baton, error) {
	p, err := asNode(parent)
	if err != nil {
		return nil, err
	}
	p.removeChild(name)
	child := newNode(p, name, false)
	p.Children = append(p.Children, child)
	return child, nil
}

func (t *TreeBuilder) AddFile(parent Baton, name string) (Baton, error) {
	return t.ReplaceFile(parent, name, "", 0)
}

func (t *TreeBuilder) Delete(parent Baton, name string) error {
	p, err := asNode(parent)
	if err != nil {
		return err
	}
	p.removeChild(name)
	delete(p.EntryProps, name)
	return nil
}

func (t *TreeBuilder) ChangeDirProp(dir Baton, name string, value []byte) error {
	n, err := asNode(dir)
	if err != nil {
		return err
	}
	if value == nil {
		delete(n.Properties, name)
		return nil
	}
	n.Properties[name] = value
	return nil
}

func (t *TreeBuilder) ChangeDirentProp(dir Baton, entryName string, name string, value []byte) error {
	n, err := asNode(dir)
	if err != nil {
		return err
	}
	props := n.EntryProps[entryName]
	if props == nil {
		props = make(map[string][]byte)
		n.EntryProps[entryName] = props
	}
	if value == nil {
		delete(props, name)
		return nil
	}
	props[name] = value
	return nil
}

func (t *TreeBuilder) ChangeFileProp(file Baton, name string, value []byte) error {
	return t.ChangeDirProp(file, name, value)
}

func (t *TreeBuilder) ApplyTextDelta(file Baton) (TextDeltaHandler, error) {
	n, err := asNode(file)
	if err != nil {
		return nil, err
	}
	n.Content = nil
	return func(window *TextDeltaWindow) error {
		if window == nil {
			return nil
		}
		n.Content = append(n.Content, window.Data...)
		return nil
	}, nil
}

func (t *TreeBuilder) CloseFile(file Baton) error {
	_, err := asNode(file)
	return err
}

func (t *TreeBuilder) CloseDirectory(dir Baton) error {
	_, err := asNode(dir)
	return err
}
