//go:build !windows

package fspath

// Native is the platform the binary was built for.
const Native = POSIX
