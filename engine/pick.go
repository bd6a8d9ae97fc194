package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/envmn/envfile"
	"github.com/ardnew/envmn/log"
)

// pick moves the named block after every other block and writes the
// resulting document.
func (e *Engine) pick(ctx context.Context, w io.Writer, name string) error {
	if err := e.doc.Pick(name); err != nil {
		if errors.Is(err, envfile.ErrBlockNotFound) {
			if s, ok := e.Suggest(name); ok {
				return envfile.WrapError(err).WithHint("did you mean " + strconv.Quote(s) + "?")
			}
		}

		return envfile.WrapError(err).With(slog.String("input", e.name))
	}

	log.DebugContext(ctx, "picked block",
		slog.String("block", name),
		slog.String("input", e.name),
	)

	_, err := io.WriteString(w, e.doc.String())

	return err
}

// Suggest returns the named block that best fuzzy-matches name.
// The default block is never suggested.
func (e *Engine) Suggest(name string) (string, bool) {
	names := e.doc.Names()[1:]

	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return "", false
	}

	return matches[0].Str, true
}
