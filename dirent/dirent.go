// Package dirent implements the Dirent path flavor: local filesystem
// directory-entry paths, canonicalized per one of two platform matrices
// (POSIX or DOS) selected at runtime via pathkind.Platform rather than at
// compile time, so a single binary's test suite can exercise both.
package dirent

import (
	"strings"
	"unicode"

	"github.com/worldiety/vfspath/pathkind"
)

// Path is a Dirent string, canonical or not, for the platform it was
// produced under. A Path canonicalized under one platform is not meaningful
// under the other; callers must not mix platforms any more than they mix
// flavors.
type Path string

// TempDirName is the process-wide sentinel for a scratch subdirectory name,
// the dirent equivalent of the teacher's tmp-directory constant: a
// module-level constant rather than a singleton with its own lifecycle.
const TempDirName = ".vfspath-tmp"

func isDOS(p pathkind.Platform) bool { return p == pathkind.DOS }

func isSep(b byte) bool { return b == '/' || b == '\\' }

func splitOnSep(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '\\' })
}

// driveSpec describes the DOS root prefix of a path, if any.
type driveSpec struct {
	kind   int // 0 = none, 1 = drive, 2 = UNC
	drive  byte
	host   string
	share  string
	rooted bool
	rest   string
}

const (
	driveNone = iota
	driveLetter
	driveUNC
)

// parseDriveSpec inspects the DOS-specific root prefix of a raw (possibly
// backslash-separated) path. It does not canonicalize anything; it only
// classifies.
func parseDriveSpec(s string) driveSpec {
	if len(s) >= 2 && isSep(s[0]) && isSep(s[1]) {
		// UNC: //host/share/rest or \\host\share\rest
		rest := s[2:]
		for len(rest) > 0 && isSep(rest[0]) {
			rest = rest[1:]
		}
		parts := splitOnSep(rest)
		if len(parts) == 0 {
			return driveSpec{kind: driveNone}
		}
		host := parts[0]
		share := ""
		remainder := ""
		if len(parts) > 1 {
			share = parts[1]
			// recompute remainder from the raw string to preserve exact
			// segment boundaries for the generic segment walker below.
			idx := strings.Index(rest, parts[0])
			after := rest[idx+len(parts[0]):]
			after = strings.TrimLeft(after, "/\\")
			idx2 := strings.Index(after, parts[1])
			remainder = after[idx2+len(parts[1]):]
		}
		return driveSpec{kind: driveUNC, host: host, share: share, rest: remainder}
	}
	if len(s) >= 2 && isLetter(s[0]) && s[1] == ':' {
		rooted := len(s) >= 3 && isSep(s[2])
		rest := s[2:]
		if rooted {
			rest = rest[1:]
		}
		return driveSpec{kind: driveLetter, drive: upper(s[0]), rooted: rooted, rest: rest}
	}
	return driveSpec{kind: driveNone, rest: s}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func upper(b byte) byte {
	return byte(unicode.ToUpper(rune(b)))
}

// Canonicalize is a total function; output satisfies the canonical
// invariant for platform and is idempotent.
func Canonicalize(platform pathkind.Platform, input string) Path {
	if isDOS(platform) {
		return canonicalizeDOS(input)
	}
	return canonicalizePOSIX(input)
}

func canonicalizePOSIX(input string) Path {
	rooted := strings.HasPrefix(input, "/")
	remainder := input
	if rooted {
		remainder = strings.TrimPrefix(input, "/")
	}
	segments := pathkind.WalkSegments(remainder)
	joined := pathkind.JoinSegments(segments)
	if rooted {
		if joined == "" {
			return "/"
		}
		return Path("/" + joined)
	}
	return Path(joined)
}

func canonicalizeDOS(input string) Path {
	spec := parseDriveSpec(input)
	segments := pathkind.WalkSegments(strings.ReplaceAll(spec.rest, "\\", "/"))
	joined := pathkind.JoinSegments(segments)

	switch spec.kind {
	case driveUNC:
		prefix := "//" + strings.ToLower(spec.host) + "/" + spec.share
		if joined == "" {
			return Path(prefix)
		}
		return Path(prefix + "/" + joined)
	case driveLetter:
		prefix := string(spec.drive) + ":"
		if spec.rooted {
			if joined == "" {
				return Path(prefix + "/")
			}
			return Path(prefix + "/" + joined)
		}
		return Path(prefix + joined)
	default:
		return Path(joined)
	}
}

// IsCanonical reports whether input is already in canonical form for
// platform.
func IsCanonical(platform pathkind.Platform, input string) bool {
	return string(Canonicalize(platform, input)) == input
}

// IsAbsolute reports whether path is absolute: POSIX paths beginning with
// "/"; DOS UNC paths, or drive-rooted paths of the form "X:/...".
func IsAbsolute(platform pathkind.Platform, path Path) bool {
	s := string(path)
	if !isDOS(platform) {
		return strings.HasPrefix(s, "/")
	}
	if strings.HasPrefix(s, "//") {
		return true
	}
	if len(s) >= 3 && isLetter(s[0]) && s[1] == ':' && s[2] == '/' {
		return true
	}
	return false
}

// IsRoot reports whether path is a root for platform: "/" for POSIX; "X:",
// "X:/", or "//host/share" (no trailing slash) for DOS.
func IsRoot(platform pathkind.Platform, path Path) bool {
	s := string(path)
	if !isDOS(platform) {
		return s == "/"
	}
	if len(s) == 2 && isLetter(s[0]) && s[1] == ':' {
		return true
	}
	if len(s) == 3 && isLetter(s[0]) && s[1] == ':' && s[2] == '/' {
		return true
	}
	if strings.HasPrefix(s, "//") {
		rest := s[2:]
		i := strings.Index(rest, "/")
		return i > 0 && i < len(rest)-1 && !strings.Contains(rest[i+1:], "/")
	}
	return false
}

// driveRoot returns the "X:" drive prefix of a canonical path and whether
// it is rooted, or ("", false) if path has no drive prefix.
func driveRoot(path Path) (string, bool) {
	s := string(path)
	if len(s) >= 2 && isLetter(s[0]) && s[1] == ':' {
		rooted := len(s) >= 3 && s[2] == '/'
		return string(s[0:1]), rooted
	}
	return "", false
}

// Join composes base and component per the Dirent join rules in spec.md
// §4.1: an absolute component wins outright; an empty operand returns the
// other; a DOS drive-relative component ("/foo") replaces the path portion
// of base's drive root; otherwise a single separator is inserted unless
// base already ends in "/" or (DOS) ":".
func Join(platform pathkind.Platform, base, component Path) Path {
	if IsAbsolute(platform, component) {
		return component
	}
	if base == "" {
		return component
	}
	if component == "" {
		return base
	}
	if isDOS(platform) {
		cs := string(component)
		if strings.HasPrefix(cs, "/") && !strings.HasPrefix(cs, "//") {
			drive, rooted := driveRoot(base)
			if drive == "" || !rooted {
				return component
			}
			return Path(drive + ":/" + strings.TrimPrefix(cs, "/"))
		}
	}
	bs := string(base)
	needsSep := !strings.HasSuffix(bs, "/")
	if isDOS(platform) && strings.HasSuffix(bs, ":") {
		needsSep = false
	}
	if needsSep {
		return Path(bs + "/" + string(component))
	}
	return Path(bs + string(component))
}

// JoinMany is equivalent to repeated Join, except that a rooted component
// anywhere in the list discards every component before it from the result.
func JoinMany(platform pathkind.Platform, base Path, components ...Path) Path {
	result := base
	for _, c := range components {
		if IsAbsolute(platform, c) {
			result = c
			continue
		}
		result = Join(platform, result, c)
	}
	return result
}

// Split returns the (dirname, basename) pair for a canonical path.
func Split(platform pathkind.Platform, path Path) (dir, base Path) {
	s := string(path)
	if IsRoot(platform, path) {
		return path, ""
	}
	i := strings.LastIndex(s, "/")
	if i < 0 {
		return "", path
	}
	head := s[:i]
	if head == "" {
		head = "/"
	} else if isDOS(platform) {
		if drive, rooted := driveRoot(Path(head)); drive != "" && rooted && len(head) == 2 {
			head = drive + ":/"
		}
	}
	return Path(head), Path(s[i+1:])
}

// Dirname returns the directory portion of path.
func Dirname(platform pathkind.Platform, path Path) Path {
	d, _ := Split(platform, path)
	return d
}

// Basename returns the final segment of path.
func Basename(platform pathkind.Platform, path Path) Path {
	_, b := Split(platform, path)
	return b
}

// IsChild returns the portion of child strictly below parent, or ("", false)
// if child is not strictly below parent.
func IsChild(platform pathkind.Platform, parent, child Path) (Path, bool) {
	if parent == child {
		return "", false
	}
	p, c := string(parent), string(child)
	prefix := p
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	if !strings.HasPrefix(c, prefix) {
		return "", false
	}
	return Path(c[len(prefix):]), true
}

// IsAncestor reports whether parent == child or child is strictly below
// parent. The empty Dirent is an ancestor of every non-absolute path and
// never of an absolute one.
func IsAncestor(platform pathkind.Platform, parent, child Path) bool {
	if parent == child {
		return true
	}
	if parent == "" {
		return !IsAbsolute(platform, child)
	}
	_, ok := IsChild(platform, parent, child)
	return ok
}

// SkipAncestor removes the ancestor prefix from child when parent is an
// ancestor of child; otherwise it returns child unchanged.
func SkipAncestor(platform pathkind.Platform, parent, child Path) Path {
	if suffix, ok := IsChild(platform, parent, child); ok {
		return suffix
	}
	if parent == child {
		return ""
	}
	return child
}

// LongestAncestor returns the longest canonical prefix that is an ancestor
// of both a and b, or "" if none exists.
func LongestAncestor(platform pathkind.Platform, a, b Path) Path {
	aRoot, aRooted := rootOf(platform, a)
	bRoot, bRooted := rootOf(platform, b)
	if aRooted != bRooted || aRoot != bRoot {
		return ""
	}
	as := pathkind.WalkSegments(strings.TrimPrefix(string(a), aRoot))
	bs := pathkind.WalkSegments(strings.TrimPrefix(string(b), bRoot))
	n := len(as)
	if len(bs) < n {
		n = len(bs)
	}
	i := 0
	for i < n && as[i] == bs[i] {
		i++
	}
	joined := pathkind.JoinSegments(as[:i])
	if aRoot == "" {
		return Path(joined)
	}
	if joined == "" {
		return Path(aRoot)
	}
	if strings.HasSuffix(aRoot, "/") {
		return Path(aRoot + joined)
	}
	return Path(aRoot + "/" + joined)
}

// rootOf returns the root prefix (possibly empty) of a canonical path and
// whether it is rooted/absolute.
func rootOf(platform pathkind.Platform, path Path) (string, bool) {
	if !isDOS(platform) {
		if strings.HasPrefix(string(path), "/") {
			return "/", true
		}
		return "", false
	}
	s := string(path)
	if strings.HasPrefix(s, "//") {
		rest := s[2:]
		i := strings.Index(rest, "/")
		if i < 0 {
			return s, true
		}
		j := strings.Index(rest[i+1:], "/")
		if j < 0 {
			return s, true
		}
		return s[:2+i+1+j], true
	}
	if drive, rooted := driveRoot(path); drive != "" {
		if rooted {
			return drive + ":/", true
		}
		return drive + ":", false
	}
	return "", false
}

// LocalStyle is the presentation-only mapping from the canonical internal
// "/"-separated form to the platform's local separator; the empty path maps
// to ".". It is never used for comparison, storage, or any other algebraic
// operation in this package.
func LocalStyle(platform pathkind.Platform, path Path) string {
	s := string(path)
	if s == "" {
		return "."
	}
	if !isDOS(platform) {
		return s
	}
	return strings.ReplaceAll(s, "/", `\`)
}
