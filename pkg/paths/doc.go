// Package paths provides centralized path handling for uniqr.
//
// It resolves the locations uniqr reads from and writes to outside of its
// input and output streams, following the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/uniqr/config.toml (user configuration)
//   - State: $XDG_STATE_HOME/uniqr/uniqr.log (log file)
//
// # Environment Variables
//
//   - UNIQR_CONFIG: explicit path of the user configuration file
//   - UNIQR_CONFIG_DIR: override the config directory (default: $XDG_CONFIG_HOME/uniqr)
//   - XDG_STATE_HOME: state directory root (default: ~/.local/state)
//
// Paths beginning with ~ are expanded to the user's home directory.
package paths
