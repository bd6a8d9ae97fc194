package cli

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/envmn/cli/cmd"
	"github.com/ardnew/envmn/envfile"
	"github.com/ardnew/envmn/log"
	"github.com/ardnew/envmn/pkg"
)

// CLI is the top-level command-line interface for envmn.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	VersionFlag kong.VersionFlag `help:"Print version and exit." name:"version" short:"V"`

	Lint    cmd.Lint    `cmd:"" help:"Validate input"`
	Format  cmd.Format  `cmd:"" help:"Rewrite input in canonical form"`
	List    cmd.List    `cmd:"" help:"List blocks in document order"`
	Pick    cmd.Pick    `cmd:"" help:"Move a block after all other blocks"`
	Init    cmd.Init    `cmd:"" help:"Initialize configuration file"`
	Version cmd.Version `cmd:"" help:"Print version"`
	Help    cmd.Help    `cmd:"" help:"Show help"`
}

// Run executes the envmn CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
//
// Standard streams are taken from ctx (see [cmd.WithStdio]).
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	if len(args) == 0 {
		return envfile.ErrNoOperation.WithHint("run '" + pkg.Name + " help' for usage")
	}

	stdio := cmd.StdioFrom(ctx)

	vars := kong.Vars{
		"version":            pkg.Name + " version " + pkg.SemVer(),
		cmd.ConfigIdentifier: configPath(baseConfig),
	}.
		CloneWith(cli.Log.vars(stdio.Err)).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctx = cmd.WithStdio(ctx, stdio)

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position.
	log.Config(log.WithOutput(stdio.Err))
	cli.Log.scan(args)

	// Help and version flags exit from within the parser.
	exited := false

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Writers(stdio.Out, stdio.Err),
		kong.Exit(func(code int) {
			exited = true

			exit(code)
		}),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		// Later files take precedence.
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		kong.Configuration(loadTOML, configPath(baseConfig+".toml")),
		kong.Configuration(loadEnv, configPath(baseConfig)),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if exited {
		return nil
	}

	if err != nil {
		return parseError(parser, args, err)
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	log.DebugContext(ctx, "run", slog.String("command", ktx.Command()))

	// Execute the selected command
	return ktx.Run()
}

// parseError classifies a kong parse failure. Without a selected command,
// the failure is NoOperationFound when no positional argument was given and
// UnknownCommand otherwise.
func parseError(parser *kong.Kong, args []string, err error) error {
	var perr *kong.ParseError
	if !errors.As(err, &perr) || perr.Context == nil || perr.Context.Selected() != nil {
		return envfile.ErrFailedToParseArgs.Wrap(err)
	}

	name, ok := firstPositional(args, parser.Model.Flags)
	if !ok {
		return envfile.ErrNoOperation.
			WithHint("run '" + pkg.Name + " help' for usage")
	}

	unknown := envfile.ErrUnknownCommand.
		With(slog.String("command", name)).
		Wrap(err)

	commands := make([]string, 0, len(parser.Model.Children))
	for _, node := range parser.Model.Children {
		if node.Type == kong.CommandNode && !node.Hidden {
			commands = append(commands, node.Name)
		}
	}

	if matches := fuzzy.Find(name, commands); len(matches) > 0 {
		return unknown.WithHint("did you mean " + strconv.Quote(matches[0].Str) + "?")
	}

	return unknown
}

// firstPositional returns the first argument that is neither a flag nor the
// value of a flag.
func firstPositional(args []string, flags []*kong.Flag) (string, bool) {
	takesValue := func(arg string) bool {
		for _, f := range flags {
			if arg == "--"+f.Name || (f.Short != 0 && arg == "-"+string(f.Short)) {
				return !f.IsBool()
			}
		}

		return false
	}

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "--":
			if i+1 < len(args) {
				return args[i+1], true
			}

			return "", false

		case len(arg) > 1 && strings.HasPrefix(arg, "-"):
			if !strings.Contains(arg, "=") && takesValue(arg) {
				i++
			}

		default:
			return arg, true
		}
	}

	return "", false
}
