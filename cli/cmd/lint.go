package cmd

import (
	"context"

	"github.com/ardnew/envmn/engine"
)

// Lint validates the input and reports nothing on success.
type Lint struct {
	File  string     `arg:"" help:"Input file (default .env)." optional:"" type:"path"`
	Parse ParseFlags `embed:""`
}

// Run executes the lint command.
func (l *Lint) Run(ctx context.Context) error {
	src, err := resolveSource(ctx, l.File)
	if err != nil {
		return err
	}

	eng, err := src.load(l.Parse)
	if err != nil {
		return err
	}

	return eng.Run(ctx, StdioFrom(ctx).Out, engine.Request{Op: engine.OpLint})
}
