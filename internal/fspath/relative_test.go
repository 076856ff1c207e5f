package fspath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRelative(t *testing.T) {
	tests := []struct {
		path, parent, want string
	}{
		{"/foo/bar/baz.c", "/foo/bar", "baz.c"},
		{"/foo/bar/asdf/baz.c", "/foo/bar", "asdf/baz.c"},
		{"/foo/bar/asdf/baz.c", "/foo/bar/asdf", "baz.c"},
		{"/foo/bar/asdf/baz.c", "/foo/bar/asdf/", "baz.c"},
		{"/foo/bar/baz.c", "/foo/bar/asdf", "../baz.c"},
		{"/foo/bar/baz.c", "/foo/bar/asdf/qwer", "../../baz.c"},
		{"/foo/bar/baz.c", "/foo/bar/asdf/qwer/", "../../baz.c"},
		{"/foo/bar", "/foo/bar/baz", "../"},
		{"/foo/bar", "/foo/bar", ""},
		{"/foo", "/bar", "../foo"},
		{"a/b", "a/c", "../b"},
	}

	for _, tt := range tests {
		got, err := MakeRelative(tt.path, tt.parent)
		require.NoError(t, err, "MakeRelative(%q, %q)", tt.path, tt.parent)
		assert.Equal(t, tt.want, got, "MakeRelative(%q, %q)", tt.path, tt.parent)
	}
}

func TestMakeRelative_NoCommonSegment(t *testing.T) {
	for _, tt := range [][2]string{{"foo", "bar"}, {"", "/x"}, {"a/b", "/a/b"}} {
		_, err := MakeRelative(tt[0], tt[1])
		assert.ErrorIs(t, err, ErrNotFound, "MakeRelative(%q, %q)", tt[0], tt[1])
	}
}

func TestSquashSlashes(t *testing.T) {
	assert.Equal(t, "", SquashSlashes(""))
	assert.Equal(t, "/", SquashSlashes("////"))
	assert.Equal(t, "/a/b/c/", SquashSlashes("///a//b/c//"))
	assert.Equal(t, "a/b", SquashSlashes("a/b"))
}

func TestIsDotOrDotDot(t *testing.T) {
	assert.True(t, IsDotOrDotDot("."))
	assert.True(t, IsDotOrDotDot(".."))
	assert.False(t, IsDotOrDotDot("..."))
	assert.False(t, IsDotOrDotDot(".git"))
	assert.False(t, IsDotOrDotDot(""))
}
