package engine

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/ardnew/envmn/envfile"
	"github.com/ardnew/envmn/log"
)

// format writes the canonical form of the document.
//
// With diff, a line diff of the source against the canonical form is written
// instead; nothing is written when they are equal. With check, the operation
// fails with NotFormatted when they differ, and the canonical form itself is
// never written.
func (e *Engine) format(ctx context.Context, w io.Writer, check, diff bool) error {
	out := e.doc.String()
	changed := !e.hasSource || out != e.source

	log.DebugContext(ctx, "format",
		slog.String("input", e.name),
		slog.Bool("changed", changed),
	)

	if diff && changed {
		if _, err := io.WriteString(w, lineDiff(e.name, e.source, out)); err != nil {
			return err
		}
	}

	if check && changed {
		return envfile.ErrNotFormatted.With(slog.String("input", e.name))
	}

	if check || diff {
		return nil
	}

	_, err := io.WriteString(w, out)

	return err
}

// lineDiff renders a whole-line diff of before and after with unified-style
// headers and -, + and space prefixes.
func lineDiff(name, before, after string) string {
	dmp := diffmatchpatch.New()

	a, b, lines := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), lines)

	var sb strings.Builder

	sb.WriteString("--- " + name + "\n")
	sb.WriteString("+++ " + name + " (formatted)\n")

	for _, d := range diffs {
		prefix := " "

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffEqual:
		}

		for line := range strings.Lines(d.Text) {
			sb.WriteString(prefix)
			sb.WriteString(line)

			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n\\ No newline at end of file\n")
			}
		}
	}

	return sb.String()
}
