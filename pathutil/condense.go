// Package pathutil holds the flavor-agnostic path-algebra operation,
// condense_targets, used by CLI front-ends to turn a user-supplied list of
// targets into a common base plus a set of relative suffixes. It is
// generic over a small Algebra contract that each flavor package
// implements, the same one-interface-several-implementations shape the
// teacher uses for its DataProvider/FileSystem contracts.
package pathutil

// Algebra is the minimal per-flavor contract CondenseTargets needs. Each
// flavor package (dirent, relpath, uri) exposes a concrete implementation.
type Algebra interface {
	// Absolutize resolves path to its absolute/canonical form for folding.
	// Flavors with no notion of "current directory" (Relpath, Uri) simply
	// canonicalize.
	Absolutize(path string) (string, error)
	// LongestAncestor returns the longest canonical prefix that is an
	// ancestor of both a and b.
	LongestAncestor(a, b string) string
	// IsAncestor reports whether parent == child or child is strictly
	// below parent.
	IsAncestor(parent, child string) bool
	// SkipAncestor removes the ancestor prefix from child.
	SkipAncestor(parent, child string) string
}

// CondenseTargets implements spec.md §4.1's condense_targets: it
// absolutizes every input, folds longest_ancestor across all of them to
// find the common base, and — when removeRedundancies is set — drops any
// input that is itself a descendant of another retained input, and drops
// any input equal to the common base.
func CondenseTargets(a Algebra, paths []string, removeRedundancies bool) (commonBase string, suffixes []string, err error) {
	if len(paths) == 0 {
		return "", nil, nil
	}

	absolute := make([]string, len(paths))
	for i, p := range paths {
		abs, aerr := a.Absolutize(p)
		if aerr != nil {
			return "", nil, aerr
		}
		absolute[i] = abs
	}

	base := absolute[0]
	for _, p := range absolute[1:] {
		base = a.LongestAncestor(base, p)
	}

	kept := absolute
	if removeRedundancies {
		kept = make([]string, 0, len(absolute))
		for i, p := range absolute {
			if p == base {
				continue
			}
			redundant := false
			for j, q := range absolute {
				if i == j || q == base {
					continue
				}
				if a.IsAncestor(q, p) && q != p {
					redundant = true
					break
				}
			}
			if !redundant {
				kept = append(kept, p)
			}
		}
	}

	suffixes = make([]string, len(kept))
	for i, p := range kept {
		suffixes[i] = a.SkipAncestor(base, p)
	}
	return base, suffixes, nil
}
