// Package config resolves uniqr's configuration.
//
// Values are layered, lowest precedence first:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file (TOML, see pkg/paths)
//  3. UNIQR_INPUT, UNIQR_OUTPUT and UNIQR_COUNT environment variables
//  4. command-line arguments
//
// The result is a Config value that is handed to the engine once and
// never mutated.
package config
