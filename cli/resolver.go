package cli

import (
	"io"
	"log/slog"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/pelletier/go-toml/v2"

	"github.com/ardnew/envmn/cli/cmd"
	"github.com/ardnew/envmn/envfile"
	"github.com/ardnew/envmn/log"
)

// config implements [kong.Resolver] for configuration files holding global
// flag values plus one section of flag values per command.
//
// Keys are stored as flag names, so "LOG_LEVEL", "log_level" and
// "log-level" all configure --log-level.
type config struct {
	global   map[string]any
	commands map[string]map[string]any
}

func newConfig() config {
	return config{
		global:   map[string]any{},
		commands: map[string]map[string]any{},
	}
}

func (r config) set(command, key string, value any) {
	if command == "" {
		r.global[cmd.FlagName(key)] = value

		return
	}

	name := cmd.FlagName(command)

	section, ok := r.commands[name]
	if !ok {
		section = map[string]any{}
		r.commands[name] = section
	}

	section[cmd.FlagName(key)] = value
}

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
// A command's own section takes precedence over the global values.
func (r config) Resolve(
	_ *kong.Context,
	parent *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if parent != nil && parent.Command != nil {
		if value, ok := r.commands[parent.Command.Name][flag.Name]; ok {
			return value, nil
		}
	}

	if value, ok := r.global[flag.Name]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// loadEnv is a [kong.ConfigurationLoader] that parses config files written
// in envmn's own format.
//
// Variables of the default block become global flag values. Each named block
// holds the flag values of the command with the same name:
//
//	LOG_LEVEL=debug
//	LOG_PRETTY=false
//
//	#@ list
//	OUTPUT=yaml
//	##
//
// Command-line flags override config file values. A file that fails to
// parse is ignored with a warning.
func loadEnv(r io.Reader) (kong.Resolver, error) {
	res := newConfig()

	doc, err := envfile.ParseReader(r)
	if err != nil {
		log.Warn("ignoring invalid configuration file", slog.Any("error", err))

		return res, nil
	}

	for block := range doc.All() {
		command := ""
		if !block.IsDefault() {
			command = block.Name()
		}

		for _, v := range block.Variables() {
			res.set(command, v.Key, v.Value)
		}
	}

	return res, nil
}

// loadTOML is a [kong.ConfigurationLoader] for TOML config files.
// Top-level keys are global flag values; tables are command sections:
//
//	log_level = "debug"
//
//	[list]
//	output = "json"
func loadTOML(r io.Reader) (kong.Resolver, error) {
	res := newConfig()

	var raw map[string]any

	err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		log.Warn("ignoring invalid configuration file", slog.Any("error", err))

		return res, nil
	}

	for key, value := range raw {
		if table, ok := value.(map[string]any); ok {
			for k, v := range table {
				res.set(key, k, tomlValue(v))
			}

			continue
		}

		res.set("", key, tomlValue(value))
	}

	return res, nil
}

// tomlValue converts decoded TOML values to forms kong can map onto flags.
func tomlValue(v any) any {
	switch v := v.(type) {
	case int64:
		// Kong requires numbers as strings for parsing
		return strconv.FormatInt(v, 10)

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)

	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = tomlValue(e)
		}

		return out

	default:
		return v
	}
}
