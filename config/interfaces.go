// Package config loads typed configuration sections for pico.Module
// implementations from environment variables and YAML/TOML files.
package config

// Feeder populates a registered configuration struct from one external
// source (environment, a YAML file, a TOML file, ...). Feeders run in the
// order they were added to a Loader; a later feeder overwrites a field a
// previous one already set.
type Feeder interface {
	Feed(structure interface{}) error
}

// Section is a named configuration block a module registers with the
// AppContext via pico.Configurable.RegisterConfig. Target must be a pointer
// to a struct; its fields are matched against feeders by `env`/`yaml`/`toml`
// struct tags and given defaults from `default` tags.
type Section struct {
	Name   string
	Target interface{}
}
