package uri

// Algebra adapts uri's operations to pathutil.Algebra. A Uri is already
// absolute by construction (it carries its own scheme and authority), so
// Absolutize is just Canonicalize.
type Algebra struct{}

func (Algebra) Absolutize(path string) (string, error) {
	return string(Canonicalize(path)), nil
}

func (Algebra) LongestAncestor(x, y string) string {
	return string(LongestAncestor(Path(x), Path(y)))
}

func (Algebra) IsAncestor(parent, child string) bool {
	return IsAncestor(Path(parent), Path(child))
}

func (Algebra) SkipAncestor(parent, child string) string {
	return string(SkipAncestor(Path(parent), Path(child)))
}
