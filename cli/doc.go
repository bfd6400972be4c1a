// Package cli contains the command line interface for arith.
//
// # Usage
//
// Source programs are evaluated by the default run command:
//
//	arith script.ar
//	echo "1 + 2" | arith
//
// Logging and profiling are configured through global flags:
//
//	arith --log-level=debug --pprof-mode=cpu script.ar
//
// # Commands
//
//   - run: evaluate source programs in a single shared environment (default)
//   - repl: start an interactive session
//   - fmt: reformat source as canonical syntax, JSON, YAML, or a syntax tree
//   - init: write a configuration file populated with current flag values
//   - version: print version information
//
// # Configuration Loader
//
// Flags may be persisted in a YAML configuration file loaded at startup.
// The file holds a single top-level section named after the configuration
// namespace:
//
//	config:
//	  log-level: debug
//	  log-format: text
//	  log-pretty: true
//
// Values resolve in order of priority: command line, configuration file,
// built-in defaults. [kong.Configuration] loads config.json with the stock
// JSON loader and config.yaml with [resolve].
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize and prettify log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/arith/pprof)
//
// # Examples
//
//	# Debug logging with CPU profiling
//	arith --log-level=debug --pprof-mode=cpu bench.ar
//
//	# JSON log format with heap profiling
//	arith --log-format=json --pprof-mode=heap bench.ar
//
//	# Custom profile directory
//	arith --pprof-mode=allocs --pprof-dir=/tmp/profiles bench.ar
package cli
