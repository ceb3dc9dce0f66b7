// Package config carries project-level settings for block compilation.
// Settings load from a YAML file and thread through block parsing and
// definition processing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputMode selects how committed output class names are generated.
type OutputMode string

const (
	OutputModeBEM       OutputMode = "BEM"
	OutputModeBEMUnique OutputMode = "BEM_UNIQUE"
)

// Options holds the settings threaded through block parsing.
type Options struct {
	// RootDir is the directory file paths in diagnostics are reported
	// relative to.
	RootDir string `yaml:"rootDir"`

	// OutputMode selects the output class naming scheme.
	OutputMode OutputMode `yaml:"outputMode"`
}

// Default returns the default options.
func Default() *Options {
	return &Options{
		RootDir:    ".",
		OutputMode: OutputModeBEM,
	}
}

// Load reads options from a YAML file. Unset fields keep their defaults,
// and a relative rootDir is resolved against the config file's directory.
func Load(path string) (*Options, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	opts := Default()
	if err := yaml.Unmarshal(buf, opts); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	switch opts.OutputMode {
	case OutputModeBEM, OutputModeBEMUnique:
	default:
		return nil, fmt.Errorf("parse %s: unknown outputMode %q", path, opts.OutputMode)
	}

	if !filepath.IsAbs(opts.RootDir) {
		opts.RootDir = filepath.Join(filepath.Dir(path), opts.RootDir)
	}
	return opts, nil
}

// RelPath returns file relative to the root directory. Files outside the
// root are returned unchanged.
func (o *Options) RelPath(file string) string {
	rel, err := filepath.Rel(o.RootDir, file)
	if err != nil || strings.HasPrefix(rel, "..") {
		return file
	}
	return rel
}
