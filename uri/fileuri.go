package uri

import (
	"strings"

	"github.com/worldiety/vfspath/dirent"
	"github.com/worldiety/vfspath/pathkind"
	"github.com/worldiety/vfspath/vfserr"
)

// percentDecode decodes %XX escapes without re-validating structure; used
// only for the path component of a file:// URI once it has been split from
// the rest of the URI, per spec.md §4.1's "percent-decoded on the way to a
// dirent".
func percentDecode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]) {
			b.WriteByte(hexVal(s[i+1])<<4 | hexVal(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// percentEncodePath encodes a dirent path component for embedding in a
// file:// URI: unreserved bytes and "/" pass through, everything else is
// percent-encoded with uppercase hex.
func percentEncodePath(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || c == '/' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0xF])
	}
	return b.String()
}

// ToFileDirent converts a "file://" URI into a Dirent path for platform.
// It fails with *vfserr.IllegalUrl on a malformed file: URI or an
// unsupported host/scheme combination.
func ToFileDirent(platform pathkind.Platform, fileURL Path) (dirent.Path, error) {
	c := parse(string(fileURL))
	if c.scheme != "file" {
		return "", &vfserr.IllegalURL{URL: string(fileURL)}
	}

	host := c.host
	isLocal := host == "" || strings.EqualFold(host, "localhost")

	rawPath := c.path
	if platform == pathkind.DOS {
		rawPath = strings.Replace(rawPath, "|", ":", 1)
	}
	decoded := percentDecode(rawPath)

	if platform == pathkind.DOS {
		trimmed := strings.TrimPrefix(decoded, "/")
		if len(trimmed) >= 2 && isDriveLetterPrefix(trimmed) {
			decoded = strings.ToUpper(trimmed[:1]) + trimmed[1:] // uppercase drive letter
			if isLocal {
				return dirent.Canonicalize(platform, decoded), nil
			}
		}
		if !isLocal {
			return dirent.Canonicalize(platform, "//"+host+decoded), nil
		}
		return dirent.Canonicalize(platform, decoded), nil
	}

	if !isLocal {
		return "", &vfserr.IllegalURL{URL: string(fileURL)}
	}
	return dirent.Canonicalize(platform, decoded), nil
}

func isDriveLetterPrefix(s string) bool {
	return len(s) >= 2 && ((s[0] >= 'a' && s[0] <= 'z') || (s[0] >= 'A' && s[0] <= 'Z')) && s[1] == ':'
}

// FromFileDirent converts a Dirent path into the equivalent "file://" URI.
func FromFileDirent(platform pathkind.Platform, path dirent.Path) Path {
	canon := dirent.Canonicalize(platform, string(path))
	s := string(canon)

	if platform != pathkind.DOS {
		return Path("file://" + percentEncodePath(s))
	}

	if strings.HasPrefix(s, "//") {
		rest := s[2:]
		i := strings.Index(rest, "/")
		host := rest
		tail := ""
		if i >= 0 {
			host = rest[:i]
			tail = rest[i:]
		}
		return Path("file://" + host + percentEncodePath(tail))
	}

	// Drive-rooted: /C:/x
	if len(s) >= 2 && isDriveLetterPrefix(s) {
		return Path("file:///" + percentEncodePath(s))
	}
	return Path("file://" + percentEncodePath(s))
}
