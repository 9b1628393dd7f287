package dirent

import "github.com/worldiety/vfspath/pathkind"

// Algebra adapts dirent's operations to pathutil.Algebra for a fixed
// platform, so CLI front-ends can call pathutil.CondenseTargets without
// threading the platform parameter through generic code.
type Algebra struct {
	Platform pathkind.Platform
}

// NewAlgebra returns a dirent Algebra bound to platform.
func NewAlgebra(platform pathkind.Platform) Algebra {
	return Algebra{Platform: platform}
}

func (a Algebra) Absolutize(path string) (string, error) {
	p := Canonicalize(a.Platform, path)
	if IsAbsolute(a.Platform, p) {
		return string(p), nil
	}
	abs, err := GetAbsolute(a.Platform, p)
	if err != nil {
		return "", err
	}
	return string(abs), nil
}

func (a Algebra) LongestAncestor(x, y string) string {
	return string(LongestAncestor(a.Platform, Path(x), Path(y)))
}

func (a Algebra) IsAncestor(parent, child string) bool {
	return IsAncestor(a.Platform, Path(parent), Path(child))
}

func (a Algebra) SkipAncestor(parent, child string) string {
	return string(SkipAncestor(a.Platform, Path(parent), Path(child)))
}
