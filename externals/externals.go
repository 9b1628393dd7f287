// Package externals parses the svn:externals property format described in
// spec.md §6: a newline-delimited list of external working-copy checkouts,
// each naming a target directory and a URL with an optional pinned
// revision.
package externals

import (
	"errors"
	"strconv"
	"strings"

	"github.com/worldiety/vfspath/vfserr"
)

// Revision is a pinned external revision, the "-rN" / "-r N" peg.
type Revision int64

// ExternalRef is one parsed line of an svn:externals property value.
type ExternalRef struct {
	TargetDir string
	URL       string
	Revision  *Revision // nil means "no peg, follow HEAD"
}

// Parse splits propertyValue into its ExternalRef entries. parentPath is
// carried only for error context (the directory the property was read
// from). Blank lines and lines beginning with "#" are skipped. Any other
// line that doesn't match one of the recognized shapes is rejected with
// *vfserr.InvalidExternalsDescription naming the offending line.
//
// Two token orderings are recognized: the three shapes spec.md names
// (TARGET_DIR URL, TARGET_DIR -rN URL, TARGET_DIR -r N URL) and, additively,
// the newer URL-first ordering (URL [-rN|-r N] TARGET_DIR) introduced by
// svn 1.5+ externals definitions. The two orderings are disambiguated by
// checking which token looks like a URL; a line where neither or both
// tokens look like a URL is rejected the same as any other malformed line.
func Parse(propertyValue, parentPath string) ([]ExternalRef, error) {
	var refs []ExternalRef
	for _, line := range strings.Split(propertyValue, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		fields := strings.Fields(trimmed)
		ref, err := parseLine(fields)
		if err != nil {
			return nil, &vfserr.InvalidExternalsDescription{
				Line:       line,
				ParentPath: parentPath,
				Cause:      err,
			}
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

var errBadShape = errors.New("externals: line does not match any recognized shape")

func parseLine(fields []string) (ExternalRef, error) {
	switch len(fields) {
	case 2:
		a, b := fields[0], fields[1]
		return orderByURL(a, b, nil)
	case 3:
		a, peg, b := fields[0], fields[1], fields[2]
		rev, ok := parsePeg(peg)
		if !ok {
			return ExternalRef{}, errBadShape
		}
		return orderByURL(a, b, &rev)
	case 4:
		// "-r N" splits the peg across two fields.
		a, flag, n, b := fields[0], fields[1], fields[2], fields[3]
		if flag != "-r" {
			return ExternalRef{}, errBadShape
		}
		rev, ok := parsePeg("-r" + n)
		if !ok {
			return ExternalRef{}, errBadShape
		}
		return orderByURL(a, b, &rev)
	default:
		return ExternalRef{}, errBadShape
	}
}

// orderByURL decides which of a, b is the URL and which is the target
// directory by checking which one looks like a URL, supporting both the
// TARGET_DIR-first and URL-first orderings.
func orderByURL(a, b string, rev *Revision) (ExternalRef, error) {
	aIsURL := looksLikeURL(a)
	bIsURL := looksLikeURL(b)
	switch {
	case aIsURL && !bIsURL:
		return ExternalRef{TargetDir: b, URL: a, Revision: rev}, nil
	case bIsURL && !aIsURL:
		return ExternalRef{TargetDir: a, URL: b, Revision: rev}, nil
	default:
		return ExternalRef{}, errBadShape
	}
}

func looksLikeURL(s string) bool {
	return strings.Contains(s, "://")
}

// parsePeg recognizes "-rN" (no space) as a single token.
func parsePeg(s string) (Revision, bool) {
	if !strings.HasPrefix(s, "-r") {
		return 0, false
	}
	n, err := strconv.ParseInt(s[2:], 10, 64)
	if err != nil {
		return 0, false
	}
	return Revision(n), true
}
