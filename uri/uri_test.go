package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldiety/vfspath/pathkind"
)

func TestCanonicalizeIdempotent(t *testing.T) {
	inputs := []string{
		"http://HOST//a/./b/",
		"https://example.com/a%2fb?q=1#frag",
		"urn:isbn:0451450523",
		"/a/./b/",
	}
	for _, in := range inputs {
		once := Canonicalize(in)
		twice := Canonicalize(string(once))
		assert.Equal(t, once, twice, "input %q", in)
	}
}

// scenario 1.
func TestCanonicalizeLowercasesAndCollapses(t *testing.T) {
	assert.Equal(t, Path("http://host/a/b"), Canonicalize("http://HOST//a/./b/"))
}

func TestCanonicalizePreservesUppercaseUnreservedEscape(t *testing.T) {
	// %41 decodes to 'A', an unreserved byte, so it is decoded not re-escaped.
	assert.Equal(t, Path("http://host/A"), Canonicalize("http://HOST/%41"))
}

func TestCanonicalizeInvalidEscapeBecomesLiteral(t *testing.T) {
	assert.Equal(t, Path("http://host/%25zz"), Canonicalize("http://HOST/%zz"))
}

func TestIsRootBareAuthority(t *testing.T) {
	assert.True(t, IsRoot(Canonicalize("http://host")))
	assert.False(t, IsRoot(Canonicalize("http://host/a")))
}

func TestJoinSplitRoundTrip(t *testing.T) {
	p := Canonicalize("https://example.com/a/b/c")
	dir, base := Split(p)
	assert.Equal(t, p, Join(dir, string(base)))
}

func TestIsAncestorScopedToOrigin(t *testing.T) {
	a := Canonicalize("https://example.com/a")
	b := Canonicalize("https://example.com/a/b")
	other := Canonicalize("https://other.com/a/b")
	assert.True(t, IsAncestor(a, b))
	assert.False(t, IsAncestor(a, other))
}

// scenario 5.
func TestLongestAncestorScenario(t *testing.T) {
	a := Canonicalize("https://example.com/a/b/c")
	b := Canonicalize("https://example.com/a/b/d")
	assert.Equal(t, Path("https://example.com/a/b"), LongestAncestor(a, b))
}

func TestLongestAncestorDifferentOriginIsEmpty(t *testing.T) {
	a := Canonicalize("https://example.com/a/b")
	b := Canonicalize("https://other.com/a/b")
	assert.Equal(t, Path(""), LongestAncestor(a, b))
}

// scenario 4.
func TestToFileDirentDOSPipeDriveLetter(t *testing.T) {
	got, err := ToFileDirent(pathkind.DOS, "file:///C|/x%20y")
	require.NoError(t, err)
	assert.Equal(t, "C:/x y", string(got))
}

func TestToFileDirentPOSIX(t *testing.T) {
	got, err := ToFileDirent(pathkind.POSIX, "file:///etc/passwd")
	require.NoError(t, err)
	assert.Equal(t, "/etc/passwd", string(got))
}

func TestToFileDirentRejectsNonFileScheme(t *testing.T) {
	_, err := ToFileDirent(pathkind.POSIX, "http://host/etc/passwd")
	assert.Error(t, err)
}

func TestToFileDirentRejectsRemoteHostOnPOSIX(t *testing.T) {
	_, err := ToFileDirent(pathkind.POSIX, "file://remotehost/etc/passwd")
	assert.Error(t, err)
}

func TestFromFileDirentRoundTripPOSIX(t *testing.T) {
	u := FromFileDirent(pathkind.POSIX, "/etc/passwd")
	got, err := ToFileDirent(pathkind.POSIX, u)
	require.NoError(t, err)
	assert.Equal(t, "/etc/passwd", string(got))
}
