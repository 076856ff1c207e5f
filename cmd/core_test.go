package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONOutput(t *testing.T) {
	env := newTestEnv(t)

	t.Run("value", func(t *testing.T) {
		var r struct {
			Op       string   `json:"op"`
			Platform string   `json:"platform"`
			Input    []string `json:"input"`
			Result   string   `json:"result"`
		}
		env.runJSON(&r, "--platform", "windows", "dirname", "C:/path")
		assert.Equal(t, "dirname", r.Op)
		assert.Equal(t, "windows", r.Platform)
		assert.Equal(t, []string{"C:/path"}, r.Input)
		assert.Equal(t, "C:/", r.Result)
	})

	t.Run("walkup", func(t *testing.T) {
		var r struct {
			Dirs []string `json:"dirs"`
		}
		env.runJSON(&r, "--platform", "posix", "walkup", "a/b")
		assert.Equal(t, []string{"a/b", "a/", ""}, r.Dirs)
	})

	t.Run("root", func(t *testing.T) {
		var r struct {
			Root     int  `json:"root"`
			Absolute bool `json:"absolute"`
		}
		env.runJSON(&r, "--platform", "windows", "root", "C:/x")
		assert.Equal(t, 2, r.Root)
		assert.True(t, r.Absolute)
	})

	t.Run("common", func(t *testing.T) {
		var r struct {
			Length int    `json:"length"`
			Prefix string `json:"prefix"`
		}
		env.runJSON(&r, "common", "/foo/one.txt", "/foo/two.txt")
		assert.Equal(t, 5, r.Length)
		assert.Equal(t, "/foo/", r.Prefix)
	})

	t.Run("error", func(t *testing.T) {
		var r map[string]string
		env.runJSON(&r, "resolve", "/..")
		assert.Contains(t, r["error"], "invalid path")
	})

	t.Run("invalid format", func(t *testing.T) {
		out, err := env.runErr("-o", "xml", "dirname", "a")
		require.Error(t, err)
		assert.Contains(t, out, "invalid output format")
	})
}

func TestGuide(t *testing.T) {
	env := newTestEnv(t)

	env.contains(env.run("guide"), "# pathkit")
	env.contains(env.run("guide", "windows"), "UNC")
	env.contains(env.run("llm"), "pathkit for LLMs")

	out, err := env.runErr("guide", "nope")
	require.Error(t, err)
	assert.Contains(t, out, "Available:")
	assert.Contains(t, out, "resolve")
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	env.contains(env.run("version"), "Build Tag:")
	env.contains(env.run("version"), "Path Style:")

	var info map[string]string
	env.runJSON(&info, "version")
	assert.Equal(t, "dev", info["build_tag"])
	assert.Contains(t, []string{"posix", "windows"}, info["native"])

	env.equals(env.run("version", "--short"), "dev")
}

func TestCheck(t *testing.T) {
	t.Run("builtin", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("check")
		env.contains(out, "builtin:")
		env.contains(out, " 0 failed")
		assert.NotContains(t, out, "FAIL")

		out = env.run("check", "-v")
		env.contains(out, "PASS")
	})

	t.Run("file", func(t *testing.T) {
		env := newTestEnv(t)
		path := filepath.Join(env.dir, "cases.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
cases:
  - op: dirname
    args: ["/usr/lib"]
    want: /usr
  - op: walkup
    args: ["/a/b"]
    want: |
      /a/b
      /b/
      /
  - op: resolve
    args: ["/.."]
    want: /
`), 0644))

		out, err := env.runErr("check", "cases.yaml")
		require.Error(t, err)
		assert.Equal(t, 2, strings.Count(out, "FAIL"))
		env.contains(out, "--- want")
		env.contains(out, "- /b/")
		env.contains(out, "+ /a/")
		env.contains(out, "unexpected error")
		env.contains(out, "1 passed, 2 failed, 3 total")
		env.contains(out, "conformance check failed")
	})

	t.Run("json", func(t *testing.T) {
		env := newTestEnv(t)
		path := filepath.Join(env.dir, "cases.yaml")
		require.NoError(t, os.WriteFile(path, []byte("cases: [{op: basename, args: [/a/b], want: a}]\n"), 0644))

		out, err := env.runErr("-o", "json", "check", "cases.yaml")
		require.Error(t, err)
		env.contains(out, `"failed":1`)
		env.contains(out, `"got":"b"`)
	})

	t.Run("bad file", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runErr("check", "missing.yaml")
		require.Error(t, err)
		assert.Contains(t, out, "missing.yaml")
	})
}

func TestHistory(t *testing.T) {
	env := newTestEnv(t)
	env.run("--platform", "posix", "dirname", "/usr/lib")
	env.run("--platform", "posix", "join", "a", "b")
	_, _ = env.runErr("resolve", "/..")

	assert.FileExists(t, filepath.Join(env.home, ".pathkit", "log", "pathkit-log.db"))

	out := env.run("history")
	env.contains(out, "path:dirname")
	env.contains(out, "path:join")
	env.contains(out, "FAIL")
	assert.Less(t, strings.Index(out, "path:resolve"), strings.Index(out, "path:dirname"), "newest first")

	out = env.run("history", "--source", "path:join", "--long")
	env.contains(out, "SOURCE")
	env.contains(out, "a/b")
	assert.NotContains(t, out, "path:dirname")

	out = env.run("history", "--failed", "--long")
	env.contains(out, "error: resolve")
	assert.NotContains(t, out, "path:join")

	var recs []struct {
		Source  string `json:"source"`
		Path    string `json:"path"`
		Result  string `json:"result"`
		Success bool   `json:"success"`
	}
	env.runJSON(&recs, "history", "-n", "1")
	require.Len(t, recs, 1)
	assert.Equal(t, "path:resolve", recs[0].Source)
	assert.False(t, recs[0].Success)

	env.equals(env.run("history", "--source", "nothing"), "No matching entries")

	_, err := env.runErr("history", "-n", "0")
	require.Error(t, err)
}

func TestVacuum(t *testing.T) {
	env := newTestEnv(t)
	env.run("dirname", "/a/b")
	env.run("dirname", "/a/b/c")

	env.equals(env.run("vacuum", "--older-than", "1d", "--dry-run"), "Would remove 0 entries")
	// the two dirnames plus the first dry run's own entry
	env.equals(env.run("vacuum", "--dry-run"), "Would remove 3 entries")

	out, err := env.runStdinErr("n\n", "vacuum")
	require.NoError(t, err)
	env.contains(out, "Cancelled")
	env.contains(env.run("history", "--source", "path:dirname"), "/a/b/c")

	env.equals(env.run("vacuum", "--force"), "Removed 4 entries")
	env.equals(env.run("history", "--source", "path:dirname"), "No matching entries")

	out, err = env.runStdinErr("yes\n", "vacuum")
	require.NoError(t, err)
	env.contains(out, "Removed 1 entry")

	out, err = env.runErr("vacuum", "--older-than", "7s")
	require.Error(t, err)
	assert.Contains(t, out, "invalid duration format")
}
