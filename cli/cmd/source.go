package cmd

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/term"

	"github.com/ardnew/envmn/engine"
	"github.com/ardnew/envmn/envfile"
	"github.com/ardnew/envmn/log"
	"github.com/ardnew/envmn/pkg"
)

// stdinName is the display name of input read from standard input.
const stdinName = "-"

const (
	lockTimeout    = 5 * time.Second
	lockRetryDelay = 50 * time.Millisecond
)

// ParseFlags are the parser options shared by every command that reads input.
type ParseFlags struct {
	AllowUnclosed bool `help:"Accept a block left open at end of input."`
	KeepEmpty     bool `help:"Keep blank lines inside blocks."`
}

func (p ParseFlags) options() []envfile.Option {
	return []envfile.Option{
		envfile.WithAllowUnclosed(p.AllowUnclosed),
		envfile.WithKeepEmpty(p.KeepEmpty),
	}
}

// source is one resolved input document.
type source struct {
	name string
	path string // empty when read from stdin
	text string
}

func (s source) fromStdin() bool { return s.path == "" }

// load parses the source into an engine.
func (s source) load(p ParseFlags) (*engine.Engine, error) {
	return engine.Load(s.name, s.text, p.options()...)
}

// isPiped reports whether r carries redirected input. Readers that are not
// files are always considered piped.
func isPiped(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return r != nil
	}

	if term.IsTerminal(int(f.Fd())) {
		return false
	}

	info, err := f.Stat()
	if err != nil {
		return false
	}

	mode := info.Mode()

	return mode&os.ModeNamedPipe != 0 || mode.IsRegular()
}

// resolveSource selects the input of a command: piped stdin, then file,
// then the default file in the working directory. Empty piped input falls
// through to the file.
func resolveSource(ctx context.Context, file string) (source, error) {
	stdio := StdioFrom(ctx)

	if isPiped(stdio.In) {
		buf, err := io.ReadAll(stdio.In)
		if err != nil {
			return source{}, envfile.ErrReadInput.Wrap(err)
		}

		if len(buf) > 0 {
			log.DebugContext(ctx, "reading stdin", slog.Int("bytes", len(buf)))

			return source{name: stdinName, text: string(buf)}, nil
		}
	}

	path, explicit := file, file != ""
	if !explicit {
		path = pkg.DefaultFile
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return source{}, envfile.ErrNoInput.
				With(slog.String("path", path)).
				WithHint("pipe input or pass a file")
		}

		return source{}, envfile.ErrFileError.
			With(slog.String("path", path)).
			Wrap(err)
	}

	log.DebugContext(ctx, "reading file",
		slog.String("path", path),
		slog.Int("bytes", len(buf)),
	)

	return source{name: path, path: path, text: string(buf)}, nil
}

// writeBack stores out as the new content of the source. Input from stdin,
// or any input when toStdout is set, is written to stdout instead. An
// unchanged file is not rewritten.
func (s source) writeBack(ctx context.Context, out string, toStdout bool) error {
	if toStdout || s.fromStdin() {
		_, err := io.WriteString(StdioFrom(ctx).Out, out)

		return err
	}

	if out == s.text {
		log.DebugContext(ctx, "file unchanged", slog.String("path", s.path))

		return nil
	}

	info, err := os.Stat(s.path)
	if err != nil {
		return ErrWriteFile.On(s.path).Wrap(err)
	}

	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	lock := flock.New(s.path)

	locked, err := lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil || !locked {
		return ErrLockFile.On(s.path).Wrap(err)
	}

	defer func() { _ = lock.Unlock() }()

	err = os.WriteFile(s.path, []byte(out), info.Mode().Perm())
	if err != nil {
		return ErrWriteFile.On(s.path).Wrap(err)
	}

	log.DebugContext(ctx, "file written",
		slog.String("path", s.path),
		slog.Int("bytes", len(out)),
	)

	return nil
}
