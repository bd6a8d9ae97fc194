// Package log provides a simplified structured logging interface based on
// [log/slog].
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Warn("block is tagged encrypted", slog.String("block", "secrets"))
//
// The package-level functions ([Info], [Warn], [Error], ...) write through a
// default logger that targets stderr. [Config] reconfigures it in place:
//
//	log.Config(log.WithLevel(log.LevelDebug), log.WithFormat(log.FormatJSON))
//
// # Configuration
//
// Loggers are configured with functional options: [WithLevel],
// [WithFormat], [WithTimeLayout], [WithCaller], [WithPretty] and
// [WithOutput]. A [Logger] is immutable; [Logger.Wrap] derives a copy with
// options applied and [Logger.With] adds attributes to every record.
//
// # Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn] and [LevelError]. The default is [LevelWarn].
//
// # Output Formats
//
// [FormatText] (default) and [FormatJSON]. Text output is colorized when
// pretty printing is enabled, which is the default only when the output is a
// terminal. Values implementing [slog.LogValuer] are expanded into dotted
// keys, e.g. error.kind=DuplicateBlock.
package log
