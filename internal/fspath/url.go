// url.go converts file:// URLs to local paths.
//
// Percent-decoding is lenient: an escape that is not '%' followed by two hex
// digits is copied through literally, so any input decodes to something.

package fspath

import "strings"

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func appendPercentDecode(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			hi, ok1 := unhex(s[i+1])
			lo, ok2 := unhex(s[i+2])
			if ok1 && ok2 {
				c = hi<<4 | lo
				i += 2
			}
		}
		dst = append(dst, c)
	}
	return dst
}

// PercentDecode decodes %XX escapes in s. Malformed escapes are kept as is:
//
//	"a%2c"   -> "a,"
//	"a2%%31" -> "a2%1"
//	"a2%3z"  -> "a2%3z"
func PercentDecode(s string) string {
	return string(appendPercentDecode(make([]byte, 0, len(s)), s))
}

// PercentDecode replaces the contents of b with the decoded form of s.
func (b *Buffer) PercentDecode(s string) error {
	return b.setBytes(appendPercentDecode(make([]byte, 0, len(s)), s))
}

// localFileURLPrefixLen returns the length of "file:///" or
// "file://localhost/", or -1 when url has neither prefix.
func localFileURLPrefixLen(url string) int {
	const scheme = "file://"
	if !strings.HasPrefix(url, scheme) {
		return -1
	}
	rest := url[len(scheme):]
	switch {
	case strings.HasPrefix(rest, "/"):
		return len(scheme) + 1
	case strings.HasPrefix(rest, "localhost/"):
		return len(scheme) + len("localhost/")
	}
	return -1
}

// IsLocalFileURL reports whether url is a file:// URL with an empty or
// "localhost" authority.
func IsLocalFileURL(url string) bool {
	return localFileURLPrefixLen(url) > 0
}

// FromURL converts a local file:// URL to a path.
//
// Only an empty or "localhost" authority is accepted, and the path part must
// be non-empty and must not start with another '/'. The remainder is
// percent-decoded. The leading separator is kept, except on Windows when a
// drive letter follows it:
//
//	POSIX:   "file:///c:/Temp%20folder/x" -> "/c:/Temp folder/x"
//	Windows: "file:///c:/Temp%20folder/x" -> "c:/Temp folder/x"
func (p Platform) FromURL(url string) (string, error) {
	off := localFileURLPrefixLen(url)
	if off < 0 {
		return "", invalidf("fromurl", url, "not a local file URL")
	}
	if off == len(url) || url[off] == '/' {
		return "", invalidf("fromurl", url, "URL has no path")
	}

	decoded := PercentDecode(url[off-1:])
	if p == Windows && driveLen(decoded[1:]) > 0 {
		decoded = decoded[1:]
	}
	return decoded, nil
}

// FromURLTo writes the path for url into buf.
func (p Platform) FromURLTo(buf *Buffer, url string) error {
	path, err := p.FromURL(url)
	if err != nil {
		return err
	}
	return buf.Set(path)
}

// FromURL converts url on the Native platform.
func FromURL(url string) (string, error) { return Native.FromURL(url) }
