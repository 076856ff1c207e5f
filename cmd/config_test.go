package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("get all shows defaults", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config")
		env.contains(out, "platform: native")
		env.contains(out, "unicode.precompose: false")
		env.contains(out, "limits.max_path: 4096")
		env.contains(out, "walk.limit: 0")
	})

	t.Run("set writes global config", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config", "platform", "Windows")
		env.equals(out, "platform = windows (global)")
		assert.FileExists(t, filepath.Join(env.home, ".pathkit", "config.yaml"))

		env.equals(env.run("config", "platform"), "windows")
	})

	t.Run("local", func(t *testing.T) {
		env := newTestEnv(t)

		env.equals(env.run("config", "--local", "walk.limit", "3"), "walk.limit = 3 (local)")
		assert.FileExists(t, filepath.Join(env.dir, ".pathkit", "config.yaml"))

		// local config now exists, so plain reads use it
		env.equals(env.run("config", "walk.limit"), "3")
	})

	t.Run("json", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("config", "limits.max_path", "512")

		var all map[string]string
		env.runJSON(&all, "config")
		assert.Equal(t, "512", all["limits.max_path"])

		var one struct{ Key, Value string }
		env.runJSON(&one, "config", "limits.max_path")
		assert.Equal(t, "512", one.Value)
	})
}

func TestConfig_Set(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"platform", "posix", "posix"},
		{"platform", "NATIVE", "native"},
		{"unicode.precompose", "TRUE", "true"},
		{"limits.max_path", "1", "1"},
		{"walk.limit", "65536", "65536"},
	}

	for _, tc := range tests {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			env := newTestEnv(t)
			env.run("config", tc.key, tc.value)
			env.equals(env.run("config", tc.key), tc.want)
		})
	}
}

func TestConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"invalid key", []string{"invalid.key", "value"}, "unknown config key"},
		{"invalid platform", []string{"platform", "vms"}, "invalid config value"},
		{"invalid bool", []string{"unicode.precompose", "yes"}, "invalid config value"},
		{"max_path zero", []string{"limits.max_path", "0"}, "between 1 and"},
		{"walk.limit too big", []string{"walk.limit", "65537"}, "between 0 and 65536"},
		{"get unknown", []string{"nope"}, "unknown config key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			out, err := env.runErr(append([]string{"config"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestConfig_Malformed(t *testing.T) {
	env := newTestEnv(t)
	dir := filepath.Join(env.home, ".pathkit")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("platform: [\n"), 0644))

	// path commands fail on a broken config
	out, err := env.runErr("dirname", "/a/b")
	require.Error(t, err)
	assert.Contains(t, out, "malformed config file")

	// informational commands still work
	env.contains(env.run("guide"), "# pathkit")
	env.contains(env.run("version"), "Build Tag:")
	env.contains(env.run("check"), "0 failed")
}
