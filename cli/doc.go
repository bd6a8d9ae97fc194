// Package cli contains the command line interface for envmn.
//
// # Usage
//
//	envmn lint [file]
//	envmn format [file] [--check] [--diff] [--stdout]
//	envmn list [file] [--output text|json|yaml] [--filter EXPR]
//	envmn pick <block> [file] [--stdout]
//	envmn init [--force]
//	envmn version
//	envmn help
//
// Input is read from piped standard input if any, otherwise from the file
// argument, otherwise from .env in the working directory.
//
// # Configuration
//
// Flag defaults are read from files in $XDG_CONFIG_HOME/envmn, in order of
// increasing precedence:
//
//   - config.json: flat JSON object of flag names
//   - config.toml: top-level keys for global flags, one table per command
//   - config: an envmn document; the default block holds global flags and
//     a block named after a command holds that command's flags
//
// Variable names map to flags by lowercasing and replacing underscores with
// hyphens, so LOG_LEVEL configures --log-level. Flags given on the command
// line always win. The init command writes the current flag values to the
// native config file.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time: Set timestamp format (RFC3339, kitchen, none, etc.)
//   - --[no-]log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize text output (default on for terminals)
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o envmn .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     $XDG_CACHE_HOME/envmn/pprof)
package cli
