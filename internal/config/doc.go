// Package config handles configuration loading, parsing, and validation
// from a YAML file and PASSMETER_* environment variables. Environment
// variables take precedence over the file, which takes precedence over
// built-in defaults.
package config
