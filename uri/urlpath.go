package uri

import "strings"

// UrlpathCanonicalize accepts either a full URL or a server-relative
// filesystem path and normalizes its hex-encoding by a decode-then-encode
// round trip. A full URL (one containing "://") is canonicalized like any
// other Uri; a bare server-relative path has only its percent-escapes
// renormalized, since it has no scheme or authority to lowercase.
func UrlpathCanonicalize(input string) string {
	if strings.Contains(input, "://") {
		return string(Canonicalize(input))
	}
	rooted := strings.HasPrefix(input, "/")
	remainder := normalizePercent(strings.TrimPrefix(input, "/"))
	if rooted {
		return "/" + remainder
	}
	return remainder
}
