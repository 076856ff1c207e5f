package fspath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoot(t *testing.T) {
	for _, p := range []Platform{POSIX, Windows} {
		assert.Equal(t, -1, p.Root("non/rooted/path"), p.String())
		assert.Equal(t, 0, p.Root("/rooted/path"), p.String())
		assert.Equal(t, -1, p.Root(""), p.String())
	}
}

func TestRoot_Windows(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"C:non/rooted/path", -1},
		{"C:/rooted/path", 2},
		{"C:", -1},
		{"//computername/sharefolder/resource", 14},
		{"//computername/sharefolder", 14},
		{"//computername", -1},
		{`\\computername\share`, 14},
		{`C:\rooted`, 2},
		{"///triple", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Windows.Root(tt.in))
			assert.Equal(t, tt.want >= 0, Windows.IsAbsolute(tt.in))
		})
	}
}

func TestRoot_POSIXIgnoresDrives(t *testing.T) {
	assert.Equal(t, -1, POSIX.Root("C:/rooted/path"))
	assert.Equal(t, 0, POSIX.Root("//computername"))
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in      string
		want    Platform
		wantErr bool
	}{
		{"", Native, false},
		{"native", Native, false},
		{"posix", POSIX, false},
		{"UNIX", POSIX, false},
		{"windows", Windows, false},
		{"beos", Native, true},
	}

	for _, tt := range tests {
		got, err := ParsePlatform(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
