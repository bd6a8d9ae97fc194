package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/envmn/envfile"
	"github.com/ardnew/envmn/log"
	"github.com/ardnew/envmn/pkg"
	"github.com/ardnew/envmn/profile"
)

const defaultDirMode os.FileMode = 0o700

// Init generates a default configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.On(confPath).Wrap(ErrFileExists)
	}

	err = os.MkdirAll(filepath.Dir(confPath), defaultDirMode)
	if err != nil {
		return ErrWriteConfig.On(confPath).Wrap(err)
	}

	doc, err := i.buildDocument(ctx)
	if err != nil {
		return ErrWriteConfig.On(confPath).Wrap(err)
	}

	file, err := os.Create(confPath)
	if err != nil {
		return ErrWriteConfig.On(confPath).Wrap(err)
	}
	defer file.Close()

	err = doc.Format(file)
	if err != nil {
		return ErrWriteConfig.On(confPath).Wrap(err)
	}

	log.InfoContext(ctx, "initialized configuration file",
		slog.String("path", confPath),
		slog.Int("blocks", doc.Len()),
	)

	return nil
}

// buildDocument constructs the configuration from current flag values.
// Global flags go in the default block; each command with configurable
// flags gets a block of its own holding their defaults.
func (i *Init) buildDocument(ctx context.Context) (*envfile.Document, error) {
	ktx := kongContextFrom(ctx)

	doc := envfile.NewDocument()
	doc.Default().AddComment(pkg.Name + " configuration")

	for _, flag := range ktx.Model.Flags {
		if ignoreFlag(flag) {
			continue
		}

		val := flagString(ktx.FlagValue(flag))
		if val == "" {
			continue
		}

		err := doc.Default().AddVariable(envfile.NewVariable(ConfigKey(flag.Name), val))
		if err != nil {
			return nil, err
		}
	}

	for _, node := range ktx.Model.Children {
		if node.Type != kong.CommandNode || node.Hidden {
			continue
		}

		var block *envfile.Block

		for _, flag := range node.Flags {
			if ignoreFlag(flag) || flag.Default == "" {
				continue
			}

			if block == nil {
				block = envfile.NewBlock(strings.ReplaceAll(node.Name, "-", "_"))
			}

			err := block.AddVariable(envfile.NewVariable(ConfigKey(flag.Name), flag.Default))
			if err != nil {
				return nil, err
			}
		}

		if block != nil {
			if err := doc.AddBlock(block); err != nil {
				return nil, err
			}
		}
	}

	return doc, nil
}

// ConfigKey returns the configuration variable name of a flag:
// "log-level" becomes "LOG_LEVEL".
func ConfigKey(flag string) string {
	return strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// FlagName returns the flag name of a configuration variable. It is the
// inverse of [ConfigKey].
func FlagName(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "_", "-"))
}

func ignoreFlag(flag *kong.Flag) bool {
	return flag.Hidden || slices.ContainsFunc(
		[]string{"help", "version", profile.Tag},
		func(s string) bool { return strings.HasPrefix(flag.Name, s) },
	)
}

// flagString renders a flag value as a configuration value, or "" if the
// value is unset.
func flagString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""

	case string:
		return v

	case []string:
		return strings.Join(v, ",")

	case fmt.Stringer:
		return v.String()

	default:
		return fmt.Sprint(v)
	}
}
