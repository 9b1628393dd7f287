package dirent

import (
	"bytes"
	"os"
	"strings"

	"github.com/worldiety/vfspath/pathkind"
	"github.com/worldiety/vfspath/vfserr"
)

// maxSymlinkDepth bounds the number of symlink dereferences IsUnderRoot
// will follow before giving up, mirroring the loop guard in
// filepath-securejoin's SecureJoin.
const maxSymlinkDepth = 255

// IsUnderRoot resolves candidate relative to base and verifies the result
// does not escape base via ".." or a symlink pointing outside of it. It is
// one of the few PathAlgebra operations that can fail: on escape it returns
// a *vfserr.EscapedRoot; on an unreadable filesystem entry it returns the
// underlying I/O error. The returned path is the fully resolved absolute
// path, still inside base, when ok.
//
// This is the dirent equivalent of filepath-securejoin's SecureJoin,
// generalized to the canonical "/"-separated representation used
// throughout this package instead of the host's native separator.
func IsUnderRoot(platform pathkind.Platform, base, candidate Path) (Path, error) {
	root := string(Canonicalize(platform, string(base)))
	unsafePath := string(candidate)

	var resolved bytes.Buffer
	n := 0
	for unsafePath != "" {
		if n > maxSymlinkDepth {
			return "", &vfserr.EscapedRoot{Base: root, Candidate: string(candidate)}
		}

		i := strings.IndexByte(unsafePath, '/')
		var p string
		if i == -1 {
			p, unsafePath = unsafePath, ""
		} else {
			p, unsafePath = unsafePath[:i], unsafePath[i+1:]
		}

		if p == "" || p == "." {
			continue
		}
		if p == ".." {
			r := strings.TrimSuffix(resolved.String(), "/")
			if r == "" {
				return "", &vfserr.EscapedRoot{Base: root, Candidate: string(candidate)}
			}
			resolved.Reset()
			if k := strings.LastIndexByte(r, '/'); k >= 0 {
				resolved.WriteString(r[:k+1])
			}
			continue
		}

		cleanP := string(Canonicalize(platform, "/"+resolved.String()+p))
		if cleanP == "/" {
			resolved.Reset()
			continue
		}
		fullP := string(Canonicalize(platform, root+cleanP))

		fi, err := os.Lstat(fullP)
		if err != nil && !os.IsNotExist(err) {
			return "", err
		}
		if os.IsNotExist(err) || fi.Mode()&os.ModeSymlink == 0 {
			resolved.WriteString(p)
			resolved.WriteByte('/')
			continue
		}

		n++
		dest, err := os.Readlink(fullP)
		if err != nil {
			return "", err
		}
		if IsAbsolute(platform, Path(dest)) {
			resolved.Reset()
		}
		unsafePath = dest + "/" + unsafePath
	}

	fullP := string(Canonicalize(platform, "/"+resolved.String()))
	final := Canonicalize(platform, root+fullP)
	if !IsAncestor(platform, Canonicalize(platform, root), final) && Canonicalize(platform, root) != final {
		return "", &vfserr.EscapedRoot{Base: root, Candidate: string(candidate)}
	}
	return final, nil
}
