package engine

import (
	"context"
	"log/slog"

	"github.com/ardnew/envmn/envfile"
	"github.com/ardnew/envmn/log"
)

// lint reports on a document that already passed validation.
func (e *Engine) lint(ctx context.Context) error {
	vars := 0

	for b := range e.doc.All() {
		vars += len(b.Variables())

		if b.HasTag(envfile.EncryptedTag) {
			log.WarnContext(ctx, "encrypted blocks are not supported",
				slog.String("block", b.Name()),
				slog.String("input", e.name),
			)
		}
	}

	log.InfoContext(ctx, "lint passed",
		slog.String("input", e.name),
		slog.Int("blocks", e.doc.Len()),
		slog.Int("variables", vars),
	)

	return nil
}
