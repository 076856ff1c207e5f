package fspath

// appendJoin appends parts to dst separated by sep.
//
// A separator is inserted after every non-empty part that lacks one unless it
// is the last part. Once anything has been written, the leading separator run
// of each later part is dropped so the seam carries exactly the separator
// already present. Empty parts contribute nothing.
func appendJoin(dst []byte, sep byte, parts []string) []byte {
	last := len(parts) - 1
	for i, s := range parts {
		if sep != 0 && len(dst) > 0 {
			for len(s) > 0 && s[0] == sep {
				s = s[1:]
			}
		}
		dst = append(dst, s...)
		if sep != 0 && i < last && s != "" && s[len(s)-1] != sep {
			dst = append(dst, sep)
		}
	}
	return dst
}

// joinSize is an upper bound on the joined length of parts.
func joinSize(parts []string) int {
	n := 0
	for _, s := range parts {
		n += len(s) + 1
	}
	return n
}

// JoinN replaces the contents of b with parts joined by sep.
//
// Any part may be a copy of, or a substring of, the buffer's current
// contents: the result is assembled in fresh storage before b is touched, so
// b is left unchanged if the join fails.
func (b *Buffer) JoinN(sep byte, parts ...string) error {
	out := appendJoin(make([]byte, 0, joinSize(parts)), sep, parts)
	return b.setBytes(out)
}

// JoinPath replaces the contents of b with a and c joined by '/'.
//
//	JoinPath("a", "b")    -> "a/b"
//	JoinPath("a", "")     -> "a/"
//	JoinPath("/a/", "/b") -> "/a/b"
//	JoinPath("", "/a")    -> "/a"
func (b *Buffer) JoinPath(a, c string) error {
	return b.JoinN('/', a, c)
}

// Join returns a and b joined by '/' using the JoinPath rules.
func Join(a, b string) string {
	return string(appendJoin(make([]byte, 0, len(a)+len(b)+1), '/', []string{a, b}))
}

// JoinN returns parts joined by sep using the Buffer.JoinN rules.
func JoinN(sep byte, parts ...string) string {
	return string(appendJoin(make([]byte, 0, joinSize(parts)), sep, parts))
}
