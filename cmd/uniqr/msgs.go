package uniqr

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Collapse consecutive duplicate lines"

	// Flag descriptions
	MsgFlagCount      = "Prefix lines by the number of occurrences"
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Path to a TOML config file"
	MsgFlagShowConfig = "Print the resolved configuration and exit"

	// Error messages
	MsgErrUsage  = "invalid usage"
	MsgErrPrefix = "Error: "
	MsgHintUsage = "Run 'uniqr --help' for usage."

	// Version output
	MsgVersionFormat = "uniqr version %s\n  commit: %s\n  built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")
)
