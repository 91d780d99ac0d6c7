// Package config loads and validates cinesift configuration.
//
// Configuration lives in a TOML file. Load searches the standard
// locations, applies defaults for any omitted values, normalizes
// filesystem paths, and validates the result before returning it.
package config
