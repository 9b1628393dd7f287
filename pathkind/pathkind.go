// Package pathkind holds the pieces of the path algebra that are common to
// every flavor: the platform toggle, the process-wide sentinel constants,
// and the segment-walking primitive the dirent, relpath and uri packages
// build their own canonicalize() on top of.
//
// Canonical form is an invariant, not a convenience: every function here is
// a total, pure, reentrant function of its input. None of it touches the
// filesystem.
package pathkind

import "strings"

// Platform selects the Dirent path semantics. Relpath and Uri rules are
// platform-invariant and never consult this type.
//
// The original design behind this module selected POSIX vs DOS at compile
// time. Exposing it as a runtime value instead means a single binary can be
// exercised against both matrices, which is exactly what dirent's test
// suite does.
type Platform int

const (
	// POSIX selects forward-slash paths with a single-root convention.
	POSIX Platform = iota
	// DOS selects drive-letter and UNC paths with forward slashes as the
	// canonical internal separator.
	DOS
)

func (p Platform) String() string {
	switch p {
	case POSIX:
		return "posix"
	case DOS:
		return "dos"
	default:
		return "unknown"
	}
}

// EmptyCanonical is the canonical form of the empty path, shared by every
// flavor: a relpath/dirent that denotes "no path" and is its own
// canonicalization.
const EmptyCanonical = ""

// Sep is the canonical internal path separator. Every flavor stores and
// compares paths with this separator; platform-local presentation is a
// separate, presentation-only concern (see dirent.LocalStyle).
const Sep = "/"

// WalkSegments splits the non-root remainder of a path into its segments,
// skipping empty segments (collapsing "//") and "." segments, exactly the
// single-pass rule spec.md describes for canonicalize(): "skip empty and .
// segments; copy real segments". It does not special-case "..": the spec is
// explicit that ".." is never eliminated by canonicalization.
func WalkSegments(remainder string) []string {
	raw := strings.Split(remainder, "/")
	out := make([]string, 0, len(raw))
	for _, seg := range raw {
		if seg == "" || seg == "." {
			continue
		}
		out = append(out, seg)
	}
	return out
}

// JoinSegments re-assembles segments with the canonical separator. It never
// adds a leading or trailing separator; callers prepend whatever root or
// scheme prefix applies to their flavor.
func JoinSegments(segments []string) string {
	return strings.Join(segments, Sep)
}
