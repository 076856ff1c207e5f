package path

import (
	"fmt"

	"github.com/jpl-au/pathkit/extension"
	"github.com/jpl-au/pathkit/internal/fspath"
	"github.com/jpl-au/pathkit/internal/validate"
)

// settings is the per-invocation view of configuration that operations need.
// It is a value so MCP handlers can take a private copy and override the
// platform for a single call.
type settings struct {
	platform   fspath.Platform
	precompose bool
	maxPath    int
	walkLimit  int
}

func settingsFrom(ctx extension.Context) settings {
	cfg := ctx.Config()
	return settings{
		platform:   ctx.Platform(),
		precompose: cfg.Precompose(),
		maxPath:    cfg.MaxPath(),
		walkLimit:  cfg.WalkLimit(),
	}
}

// withPlatform returns s with the named platform, or s unchanged when name
// is empty.
func (s settings) withPlatform(name string) (settings, error) {
	if name == "" {
		return s, nil
	}
	p, err := fspath.ParsePlatform(name)
	if err != nil {
		return s, err
	}
	s.platform = p
	return s, nil
}

// buffer returns an empty result buffer bounded by limits.max_path.
func (s settings) buffer() *fspath.Buffer {
	return fspath.NewBuffer(s.maxPath)
}

// prepare validates raw arguments and applies NFC precomposition when
// configured.
func (s settings) prepare(op string, in []string) ([]string, error) {
	if err := validate.Paths(in, s.maxPath); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !s.precompose {
		return in, nil
	}
	out := make([]string, len(in))
	for i, p := range in {
		out[i] = fspath.Precompose(p)
	}
	return out, nil
}
