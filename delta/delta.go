package delta

import (
	"bytes"
	"io"
	"sort"

	"github.com/worldiety/vfspath/editor"
	"github.com/worldiety/vfspath/internal/arena"
	"github.com/worldiety/vfspath/vfserr"
)

// Options configures a single Run invocation.
type Options struct {
	// Cancel, if set, is invoked at every directory boundary and before
	// every content-delta window. A true result aborts the walk with
	// *vfserr.Cancelled.
	Cancel CancelFunc
	// Diff produces the content-delta windows for a changed file. Defaults
	// to DiffWhole.
	Diff TextDiffer
}

// Revisioned is implemented by NodeIdentity values that can report the
// revision number to pass to Editor.ReplaceFile/ReplaceDirectory as
// ancestorRev. Identities that don't implement it report revision 0.
type Revisioned interface {
	Revision() int64
}

func identityRevision(id NodeIdentity) int64 {
	if r, ok := id.(Revisioned); ok {
		return r.Revision()
	}
	return 0
}

// DiffWhole is the default TextDiffer: if ancestor and target contain
// identical bytes (a nil ancestor counting as empty) it reports no windows
// at all (so Run skips ApplyTextDelta, satisfying the property-only-change
// testable property); otherwise it emits the whole target content as a
// single window.
func DiffWhole(ancestor io.Reader, target io.Reader) ([][]byte, error) {
	var targetBuf bytes.Buffer
	if _, err := io.Copy(&targetBuf, target); err != nil {
		return nil, err
	}
	if ancestor != nil {
		var ancestorBuf bytes.Buffer
		if _, err := io.Copy(&ancestorBuf, ancestor); err != nil {
			return nil, err
		}
		if bytes.Equal(ancestorBuf.Bytes(), targetBuf.Bytes()) {
			return nil, nil
		}
	}
	if ancestor == nil && targetBuf.Len() == 0 {
		return nil, nil
	}
	return [][]byte{targetBuf.Bytes()}, nil
}

// Run drives e with the structural diff between source and target,
// emitting a stream of calls whose replay transforms source into target.
// source may be nil, meaning "the empty tree" (used both for a top-level
// diff against nothing and, internally, for add subtrees).
func Run(e editor.Editor, source, target NodeSnapshot, opts Options) error {
	if opts.Diff == nil {
		opts.Diff = DiffWhole
	}
	ar := arena.New()
	defer ar.Release()

	rootBaton, err := e.ReplaceRoot()
	if err != nil {
		return err
	}
	if err := deltaDirs(e, rootBaton, source, "", target, opts, ar); err != nil {
		return err
	}
	return e.CloseDirectory(rootBaton)
}

// sortedPropertyNames returns the union of names in a and b, sorted.
func sortedPropertyNames(a, b PropertyList) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		seen[k] = struct{}{}
	}
	for k := range b {
		seen[k] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// diffProperties merge-walks source and target property lists (sorted by
// name) and invokes change for every name whose value differs: present
// only in source emits a delete (nil value), present only in target emits
// an add, and differing values emit a change.
func diffProperties(source, target PropertyList, change func(name string, value []byte) error) error {
	for _, name := range sortedPropertyNames(source, target) {
		sv, sok := source[name]
		tv, tok := target[name]
		switch {
		case sok && !tok:
			if err := change(name, nil); err != nil {
				return err
			}
		case !sok && tok:
			if err := change(name, tv); err != nil {
				return err
			}
		case sok && tok && !bytes.Equal(sv, tv):
			if err := change(name, tv); err != nil {
				return err
			}
		}
	}
	return nil
}

func properties(n NodeSnapshot) (PropertyList, error) {
	if n == nil {
		return nil, nil
	}
	return n.Properties()
}

func children(n NodeSnapshot) ([]DirEntry, error) {
	if n == nil {
		return nil, nil
	}
	return n.Children()
}

// deltaDirs is the recursive core of the engine: spec.md §4.2's
// delta_dirs(ctx, dir_handle, source, source_path, target).
func deltaDirs(e editor.Editor, dirBaton editor.Baton, source NodeSnapshot, sourcePath string, target NodeSnapshot, opts Options, ar *arena.Arena) error {
	if opts.Cancel != nil && opts.Cancel() {
		return &vfserr.Cancelled{Path: sourcePath}
	}

	sourceProps, err := properties(source)
	if err != nil {
		return err
	}
	targetProps, err := properties(target)
	if err != nil {
		return err
	}
	if err := diffProperties(sourceProps, targetProps, func(name string, value []byte) error {
		return e.ChangeDirProp(dirBaton, name, value)
	}); err != nil {
		return err
	}

	sourceChildren, err := children(source)
	if err != nil {
		return err
	}
	targetChildren, err := children(target)
	if err != nil {
		return err
	}

	i, j := 0, 0
	for i < len(sourceChildren) || j < len(targetChildren) {
		if opts.Cancel != nil && opts.Cancel() {
			return &vfserr.Cancelled{Path: sourcePath}
		}

		switch {
		case i < len(sourceChildren) && (j >= len(targetChildren) || sourceChildren[i].Name < targetChildren[j].Name):
			if err := e.Delete(dirBaton, sourceChildren[i].Name); err != nil {
				return err
			}
			i++
		case j < len(targetChildren) && (i >= len(sourceChildren) || targetChildren[j].Name < sourceChildren[i].Name):
			if err := add(e, dirBaton, sourcePath, target, targetChildren[j], opts, ar); err != nil {
				return err
			}
			j++
		default:
			sEntry, tEntry := sourceChildren[i], targetChildren[j]
			if err := diffProperties(sEntry.EntryProperties, tEntry.EntryProperties, func(name string, value []byte) error {
				return e.ChangeDirentProp(dirBaton, tEntry.Name, name, value)
			}); err != nil {
				return err
			}
			if !sEntry.Identity.Equal(tEntry.Identity) {
				if err := replace(e, dirBaton, source, sourcePath, sourceChildren, target, tEntry, opts, ar); err != nil {
					return err
				}
			}
			i++
			j++
		}
	}
	return nil
}

// bestAncestor performs the local (current-directory-only) search spec.md
// §9 documents as non-optimal but required for byte-compatible output: it
// scans candidates in source order, keeping the minimum-distance match and
// breaking ties toward the first (lowest-index) candidate found.
func bestAncestor(candidates []DirEntry, kind NodeKind, target NodeIdentity) (DirEntry, bool) {
	best := DirEntry{}
	bestDistance := 0
	found := false
	for _, c := range candidates {
		if c.Kind != kind {
			continue
		}
		d, ok := c.Identity.Distance(target)
		if !ok {
			continue
		}
		if !found || d < bestDistance {
			best, bestDistance, found = c, d, true
		}
	}
	return best, found
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

// replace implements spec.md §4.2's "Replace": a changed entry with
// matching names but differing node identities.
func replace(e editor.Editor, parentBaton editor.Baton, source NodeSnapshot, sourcePath string, siblings []DirEntry, target NodeSnapshot, tEntry DirEntry, opts Options, ar *arena.Arena) error {
	switch tEntry.Kind {
	case File:
		return replaceFile(e, parentBaton, source, sourcePath, siblings, target, tEntry, opts, ar)
	default:
		return replaceDirectory(e, parentBaton, source, sourcePath, siblings, target, tEntry, opts, ar)
	}
}

func replaceFile(e editor.Editor, parentBaton editor.Baton, source NodeSnapshot, sourcePath string, siblings []DirEntry, target NodeSnapshot, tEntry DirEntry, opts Options, ar *arena.Arena) error {
	ancestorEntry, found := bestAncestor(siblings, File, tEntry.Identity)

	var ancestorPath string
	var ancestorRev int64
	var ancestorProps PropertyList
	var ancestorSnap NodeSnapshot
	if found {
		snap, err := source.Child(ancestorEntry.Name)
		if err != nil {
			return err
		}
		ancestorSnap = snap
		ancestorPath = joinPath(sourcePath, ancestorEntry.Name)
		ancestorRev = identityRevision(ancestorEntry.Identity)
		ancestorProps, err = snap.Properties()
		if err != nil {
			snap.Release()
			return err
		}
	}

	fileBaton, err := e.ReplaceFile(parentBaton, tEntry.Name, ancestorPath, ancestorRev)
	if err != nil {
		if ancestorSnap != nil {
			ancestorSnap.Release()
		}
		return err
	}

	targetSnap, err := target.Child(tEntry.Name)
	if err != nil {
		if ancestorSnap != nil {
			ancestorSnap.Release()
		}
		return err
	}
	release := func() {
		if ancestorSnap != nil {
			ancestorSnap.Release()
		}
		targetSnap.Release()
	}

	targetProps, err := targetSnap.Properties()
	if err != nil {
		release()
		return err
	}
	if err := diffProperties(ancestorProps, targetProps, func(name string, value []byte) error {
		return e.ChangeFileProp(fileBaton, name, value)
	}); err != nil {
		release()
		return err
	}

	if err := emitTextDelta(e, fileBaton, ancestorSnap, targetSnap, opts); err != nil {
		release()
		return err
	}
	release()

	return e.CloseFile(fileBaton)
}

func replaceDirectory(e editor.Editor, parentBaton editor.Baton, source NodeSnapshot, sourcePath string, siblings []DirEntry, target NodeSnapshot, tEntry DirEntry, opts Options, ar *arena.Arena) error {
	ancestorEntry, found := bestAncestor(siblings, Dir, tEntry.Identity)

	var ancestorPath string
	var ancestorRev int64
	var ancestorSnap NodeSnapshot
	if found {
		snap, err := source.Child(ancestorEntry.Name)
		if err != nil {
			return err
		}
		ancestorSnap = snap
		ancestorPath = joinPath(sourcePath, ancestorEntry.Name)
		ancestorRev = identityRevision(ancestorEntry.Identity)
	}

	dirBaton, err := e.ReplaceDirectory(parentBaton, tEntry.Name, ancestorPath, ancestorRev)
	if err != nil {
		if ancestorSnap != nil {
			ancestorSnap.Release()
		}
		return err
	}

	targetSnap, err := target.Child(tEntry.Name)
	if err != nil {
		if ancestorSnap != nil {
			ancestorSnap.Release()
		}
		return err
	}
	release := func() {
		if ancestorSnap != nil {
			ancestorSnap.Release()
		}
		targetSnap.Release()
	}

	if err := deltaDirs(e, dirBaton, ancestorSnap, ancestorPath, targetSnap, opts, ar); err != nil {
		release()
		return err
	}
	release()

	return e.CloseDirectory(dirBaton)
}

// add implements spec.md §4.2's "Add": identical to a replace-from-scratch
// with a null ancestor, realized by recursing with a nil source.
func add(e editor.Editor, parentBaton editor.Baton, sourcePath string, target NodeSnapshot, tEntry DirEntry, opts Options, ar *arena.Arena) error {
	targetSnap, err := target.Child(tEntry.Name)
	if err != nil {
		return err
	}

	if tEntry.Kind == File {
		fileBaton, err := e.AddFile(parentBaton, tEntry.Name)
		if err != nil {
			targetSnap.Release()
			return err
		}
		targetProps, err := targetSnap.Properties()
		if err != nil {
			targetSnap.Release()
			return err
		}
		if err := diffProperties(nil, targetProps, func(name string, value []byte) error {
			return e.ChangeFileProp(fileBaton, name, value)
		}); err != nil {
			targetSnap.Release()
			return err
		}
		if err := emitTextDelta(e, fileBaton, nil, targetSnap, opts); err != nil {
			targetSnap.Release()
			return err
		}
		targetSnap.Release()
		return e.CloseFile(fileBaton)
	}

	dirBaton, err := e.AddDirectory(parentBaton, tEntry.Name)
	if err != nil {
		targetSnap.Release()
		return err
	}
	if err := deltaDirs(e, dirBaton, nil, sourcePath, targetSnap, opts, ar); err != nil {
		targetSnap.Release()
		return err
	}
	targetSnap.Release()
	return e.CloseDirectory(dirBaton)
}

// emitTextDelta runs opts.Diff against ancestor (nil means the empty byte
// sequence) and target, streaming the resulting windows through
// ApplyTextDelta and terminating with a nil window. If the diff reports no
// windows at all, ApplyTextDelta is never called.
func emitTextDelta(e editor.Editor, fileBaton editor.Baton, ancestorSnap, targetSnap NodeSnapshot, opts Options) error {
	if opts.Cancel != nil && opts.Cancel() {
		return &vfserr.Cancelled{}
	}

	var ancestorContent io.ReadCloser
	if ancestorSnap != nil {
		rc, err := ancestorSnap.Content()
		if err != nil {
			return err
		}
		ancestorContent = rc
		defer rc.Close()
	}

	targetContent, err := targetSnap.Content()
	if err != nil {
		return err
	}
	defer targetContent.Close()

	var ancestorReader io.Reader
	if ancestorContent != nil {
		ancestorReader = ancestorContent
	}
	windows, err := opts.Diff(ancestorReader, targetContent)
	if err != nil {
		return err
	}
	if len(windows) == 0 {
		return nil
	}

	handler, err := e.ApplyTextDelta(fileBaton)
	if err != nil {
		return err
	}
	for _, w := range windows {
		if opts.Cancel != nil && opts.Cancel() {
			return &vfserr.Cancelled{}
		}
		if err := handler(&editor.TextDeltaWindow{Data: w}); err != nil {
			return err
		}
	}
	return handler(nil)
}
