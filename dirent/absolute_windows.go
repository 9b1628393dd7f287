//go:build windows

package dirent

import (
	"golang.org/x/sys/windows"

	"github.com/worldiety/vfspath/pathkind"
	"github.com/worldiety/vfspath/vfserr"
)

// GetAbsolute resolves path against the current directory using the
// platform's own GetFullPathName primitive, then re-canonicalizes the
// result into this package's forward-slash form. It fails with
// *vfserr.BadFilename if the platform cannot resolve the current
// directory, per spec.md §4.1.
func GetAbsolute(platform pathkind.Platform, path Path) (Path, error) {
	p, err := windows.UTF16PtrFromString(string(path))
	if err != nil {
		return "", &vfserr.BadFilename{Path: string(path), Cause: err}
	}
	buf := make([]uint16, windows.MAX_PATH)
	n, err := windows.GetFullPathName(p, uint32(len(buf)), &buf[0], nil)
	if err != nil || n == 0 {
		return "", &vfserr.BadFilename{Path: string(path), Cause: err}
	}
	return Canonicalize(platform, windows.UTF16ToString(buf[:n])), nil
}
