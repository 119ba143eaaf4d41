// Package config loads, validates, and defaults the TOML configuration
// for bitext commands.
//
// Configuration resolves from an explicit --config path, then
// ~/.config/bitext/config.toml, then a bitext.toml in the working
// directory, and finally builtin defaults. Loaded values are normalized
// (paths expanded, names lowercased) before validation so the rest of the
// program never sees a half-formed config.
package config
