// Package cmd implements the arith subcommands.
//
// Each command is a struct whose fields declare its flags and positional
// arguments, and whose Run method carries it out. The parsed [kong.Context]
// travels inside the [context.Context] given to Run, stored with
// [WithContext], so commands can reach interpolated variables such as the
// cache directory without global state.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path
	// to the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path
	// to the default configuration file. It doubles as the top-level key
	// of the configuration document written by [Init].
	ConfigIdentifier = "config"
)
