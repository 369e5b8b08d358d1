// Package config defines runtime configuration for the equityengine CLI.
//
// Configuration merges three layers, lowest precedence first: built-in
// defaults, an optional YAML file (.equityengine in the current directory,
// the home directory, or the XDG config directory), and CLI flags. The merged Config is validated once before any
// export starts and then passed through the application by value rather
// than read from global state.
package config
