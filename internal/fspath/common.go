package fspath

// CommonDirlen returns the length of the longest common prefix of a and b
// that ends at a separator both share at the same offset, or 0.
//
//	CommonDirlen("/one.txt", "/two.txt")              -> 1
//	CommonDirlen("a/b/c/foo.txt", "a/b/c/d/bar.txt")  -> 6
//	CommonDirlen("foo/bar.txt", "bar/foo.txt")        -> 0
func CommonDirlen(a, b string) int {
	dirsep := -1
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] == '/' && b[i] == '/' {
			dirsep = i
		} else if a[i] != b[i] {
			break
		}
	}
	return dirsep + 1
}
