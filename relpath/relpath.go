// Package relpath implements the Relpath path flavor: slash-separated,
// repository-relative paths with no root prefix. Canonical form has no
// leading slash, no trailing slash, no empty segments, no "." segments, and
// is non-empty unless the whole path is the empty string.
//
// Mixing a Relpath with a Dirent or Uri in the same call is a programming
// error; because each flavor lives in its own package, the Go compiler
// rejects that mistake at the type level instead of at runtime.
package relpath

import (
	"strings"

	"github.com/worldiety/vfspath/pathkind"
)

// Path is a canonical or non-canonical Relpath string. Canonicalize before
// comparing two Paths for equality unless both are already known-canonical.
type Path string

// Canonicalize is a total function; its output satisfies the Relpath
// canonical invariant and is idempotent.
func Canonicalize(input string) Path {
	segments := pathkind.WalkSegments(input)
	return Path(pathkind.JoinSegments(segments))
}

// IsCanonical reports whether input is already in canonical form.
func IsCanonical(input string) bool {
	return string(Canonicalize(input)) == input
}

// Join concatenates base and component. An empty operand returns the other
// operand verbatim; otherwise the two are joined with a single slash.
// Relpath join never special-cases a "rooted" component, since Relpath has
// no root.
func Join(base, component Path) Path {
	if base == "" {
		return component
	}
	if component == "" {
		return base
	}
	return Path(string(base) + pathkind.Sep + string(component))
}

// JoinMany is equivalent to repeated Join across variadic components.
// Relpath has no absolute form, so no component ever resets the base.
func JoinMany(base Path, components ...Path) Path {
	result := base
	for _, c := range components {
		result = Join(result, c)
	}
	return result
}

// Split returns the (dirname, basename) pair for path. If path has no
// slash, dirname is empty and basename is path itself.
func Split(path Path) (dir, base Path) {
	s := string(path)
	i := strings.LastIndex(s, pathkind.Sep)
	if i < 0 {
		return "", path
	}
	return Path(s[:i]), Path(s[i+1:])
}

// Dirname returns the directory portion of path.
func Dirname(path Path) Path {
	d, _ := Split(path)
	return d
}

// Basename returns the final segment of path.
func Basename(path Path) Path {
	_, b := Split(path)
	return b
}

// IsChild returns the portion of child strictly below parent, or ("", false)
// if child is not strictly below parent. Identity (parent == child) yields
// false, matching spec.md's "identity yields none".
func IsChild(parent, child Path) (Path, bool) {
	if parent == child {
		return "", false
	}
	p, c := string(parent), string(child)
	if p == "" {
		if c == "" {
			return "", false
		}
		return child, true
	}
	prefix := p + pathkind.Sep
	if !strings.HasPrefix(c, prefix) {
		return "", false
	}
	return Path(c[len(prefix):]), true
}

// IsAncestor reports whether parent == child or child is strictly below
// parent. The empty Relpath is an ancestor of every Relpath, including
// itself.
func IsAncestor(parent, child Path) bool {
	if parent == child {
		return true
	}
	_, ok := IsChild(parent, child)
	return ok
}

// SkipAncestor removes the ancestor prefix (and its trailing separator)
// from child when parent is an ancestor of child; otherwise it returns
// child unchanged. It never allocates beyond the slice reference a Go
// string re-slice produces.
func SkipAncestor(parent, child Path) Path {
	if suffix, ok := IsChild(parent, child); ok {
		return suffix
	}
	if parent == child {
		return ""
	}
	return child
}

// LongestAncestor returns the longest canonical prefix that is an ancestor
// of both a and b, or "" if none exists beyond the empty path.
func LongestAncestor(a, b Path) Path {
	as := pathkind.WalkSegments(string(a))
	bs := pathkind.WalkSegments(string(b))
	n := len(as)
	if len(bs) < n {
		n = len(bs)
	}
	i := 0
	for i < n && as[i] == bs[i] {
		i++
	}
	return Path(pathkind.JoinSegments(as[:i]))
}
