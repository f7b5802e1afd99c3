// Package config carries the options a gencode run is driven by: the
// trimmed survivor of the teacher's util.Options flag struct (stripped of
// the thread-count and target-architecture fields, since neither
// concurrency nor target-specific lowering are in scope here), plus a
// YAML-file layer of defaults for repeated runs.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Options carries the settings a single gencode invocation is driven by.
type Options struct {
	Src     string `yaml:"src"`     // Path to a module source; loaded but not read: the run subcommand always lowers its built-in demo module.
	Out     string `yaml:"out"`     // Path to write the serialized IR module to.
	Verbose bool   `yaml:"verbose"` // Loaded but not read: diagnostics are printed only after lowering fails.
}

// ---------------------
// ----- Constants -----
// ---------------------

const appVersion = "gencode 1.0"

// ---------------------
// ----- Functions -----
// ---------------------

// Version returns the compiler's version string.
func Version() string {
	return appVersion
}

// Load reads YAML-encoded defaults from path and copies each one into the
// matching field of opts that is still at its zero value; fields already
// set on opts are left untouched. A missing file is not an error: it simply
// leaves opts as the caller's CLI flags already set it.
func Load(path string, opts *Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var file Options
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}
	if opts.Src == "" {
		opts.Src = file.Src
	}
	if opts.Out == "" {
		opts.Out = file.Out
	}
	if !opts.Verbose {
		opts.Verbose = file.Verbose
	}
	return nil
}
