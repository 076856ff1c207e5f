// Package conformance runs YAML case files against the path functions.
//
// A case names an operation, its arguments and either the expected output
// or a fragment of the expected error. The built-in suite is embedded in the
// binary so "pathkit check" works without any files on disk.
package conformance

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jpl-au/pathkit/internal/fspath"
	"gopkg.in/yaml.v3"
)

//go:embed cases.yaml
var builtin []byte

// ErrNoCases is returned when a case file parses but holds no cases.
var ErrNoCases = errors.New("no cases")

// Case is a single expectation.
type Case struct {
	Name     string   `yaml:"name,omitempty"`
	Op       string   `yaml:"op"`
	Args     []string `yaml:"args"`
	Want     string   `yaml:"want,omitempty"`
	Error    string   `yaml:"error,omitempty"`
	Platform string   `yaml:"platform,omitempty"`
}

// Label identifies the case in reports.
func (c Case) Label() string {
	if c.Name != "" {
		return c.Name
	}
	quoted := make([]string, len(c.Args))
	for i, a := range c.Args {
		quoted[i] = fmt.Sprintf("%q", a)
	}
	return fmt.Sprintf("%s(%s) [%s]", c.Op, strings.Join(quoted, ", "), c.platformName())
}

func (c Case) platformName() string {
	if c.Platform == "" {
		return "posix"
	}
	return strings.ToLower(c.Platform)
}

// platform returns the convention the case runs under. Cases default to
// posix so that a suite gives the same answer on every host.
func (c Case) platform() (fspath.Platform, error) {
	return fspath.ParsePlatform(c.platformName())
}

// Suite is a parsed case file.
type Suite struct {
	Source string `yaml:"-"`
	Cases  []Case `yaml:"cases"`
}

// Parse decodes a case file and checks every case names a known operation.
func Parse(source string, data []byte) (Suite, error) {
	s := Suite{Source: source}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse %s: %w", source, err)
	}
	if len(s.Cases) == 0 {
		return s, fmt.Errorf("%s: %w", source, ErrNoCases)
	}
	for i, c := range s.Cases {
		if _, ok := ops[c.Op]; !ok {
			return s, fmt.Errorf("%s: case %d: unknown op %q (valid: %s)", source, i+1, c.Op, strings.Join(Ops(), ", "))
		}
		if _, err := c.platform(); err != nil {
			return s, fmt.Errorf("%s: case %d: %w", source, i+1, err)
		}
	}
	return s, nil
}

// Load reads and parses a case file from r.
func Load(source string, r io.Reader) (Suite, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Suite{Source: source}, fmt.Errorf("read %s: %w", source, err)
	}
	return Parse(source, data)
}

// LoadFile reads and parses the case file at path.
func LoadFile(path string) (Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return Suite{Source: path}, err
	}
	defer f.Close()
	return Load(path, f)
}

// Builtin returns the embedded suite.
func Builtin() (Suite, error) {
	return Parse("builtin", builtin)
}
