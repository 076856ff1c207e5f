package fspath

// ToDir appends a trailing '/' unless b is empty or already ends with one.
func (b *Buffer) ToDir() error {
	if n := len(b.buf); n > 0 && b.buf[n-1] != '/' {
		return b.AppendByte('/')
	}
	return nil
}

// ToDir returns path in directory form.
func ToDir(path string) string {
	if path != "" && path[len(path)-1] != '/' {
		return path + "/"
	}
	return path
}

// StringToDir is the bounded form of ToDir for a fixed-size buffer of size
// bytes, one of which is reserved for a terminator. A separator is appended
// only when len(path) < size; otherwise path is returned unchanged.
// The append is done in place when path has spare capacity.
func StringToDir(path []byte, size int) []byte {
	n := len(path)
	if n > 0 && path[n-1] != '/' && n < size {
		return append(path, '/')
	}
	return path
}
