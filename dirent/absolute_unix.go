//go:build !windows

package dirent

import (
	"golang.org/x/sys/unix"

	"github.com/worldiety/vfspath/pathkind"
	"github.com/worldiety/vfspath/vfserr"
)

// GetAbsolute resolves the process's current working directory and joins
// path onto it. It fails with *vfserr.BadFilename if the platform cannot
// resolve the current directory, per spec.md §4.1.
func GetAbsolute(platform pathkind.Platform, path Path) (Path, error) {
	cwd, err := unix.Getwd()
	if err != nil {
		return "", &vfserr.BadFilename{Path: string(path), Cause: err}
	}
	return Join(platform, Canonicalize(platform, cwd), path), nil
}
