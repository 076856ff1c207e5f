package fspath

import "golang.org/x/text/unicode/norm"

// Precompose returns path in Unicode normalisation form C. Filesystems such
// as HFS+ report names decomposed (NFD); comparing them with user input
// requires a common form.
func Precompose(path string) string {
	return norm.NFC.String(path)
}

// IsPrecomposed reports whether path is already in form C.
func IsPrecomposed(path string) bool {
	return norm.NFC.IsNormalString(path)
}
