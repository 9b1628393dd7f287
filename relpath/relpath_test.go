package relpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeIdempotent(t *testing.T) {
	inputs := []string{"a/b/c", "a//b/./c/", "", ".", "a/./b"}
	for _, in := range inputs {
		once := Canonicalize(in)
		twice := Canonicalize(string(once))
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestJoinSplitRoundTrip(t *testing.T) {
	p := Canonicalize("a/b/c")
	dir, base := Split(p)
	assert.Equal(t, p, Join(dir, base))
}

func TestIsAncestorReflexiveAndTransitive(t *testing.T) {
	a, b, c := Path("a"), Path("a/b"), Path("a/b/c")
	assert.True(t, IsAncestor(a, a))
	assert.True(t, IsAncestor(a, b))
	assert.True(t, IsAncestor(b, c))
	assert.True(t, IsAncestor(a, c))
}

func TestEmptyIsAncestorOfEverything(t *testing.T) {
	assert.True(t, IsAncestor("", "a/b"))
	assert.True(t, IsAncestor("", ""))
}

func TestIsChildIdentityIsFalse(t *testing.T) {
	_, ok := IsChild("a/b", "a/b")
	assert.False(t, ok)
}

func TestSkipChildAgreement(t *testing.T) {
	parent, child := Path("a/b"), Path("a/b/c/d")
	suffix, ok := IsChild(parent, child)
	assert.True(t, ok)
	assert.Equal(t, SkipAncestor(parent, child), suffix)
	assert.Equal(t, child, Canonicalize(string(Join(parent, suffix))))
}

func TestLongestAncestor(t *testing.T) {
	assert.Equal(t, Path("a/b"), LongestAncestor("a/b/c", "a/b/d"))
	assert.Equal(t, Path(""), LongestAncestor("a/b", "x/y"))
}

func TestJoinManyNeverResetsBase(t *testing.T) {
	assert.Equal(t, Path("a/b/c"), JoinMany("a", "b", "c"))
}

func TestJoinEmptyOperand(t *testing.T) {
	assert.Equal(t, Path("a/b"), Join("", "a/b"))
	assert.Equal(t, Path("a/b"), Join("a/b", ""))
}
