package cmd

import (
	"context"

	"github.com/ardnew/envmn/engine"
)

// List prints the blocks of the input in document order.
type List struct {
	File   string          `arg:"" help:"Input file (default .env)."                        optional:"" type:"path"`
	Output engine.Encoding `default:"text" enum:"text,json,yaml" help:"Output encoding (${enum})." short:"o"`
	Filter string          `help:"Only list blocks matching this boolean expression."        short:"f"`
	Parse  ParseFlags      `embed:""`
}

// Run executes the list command.
func (l *List) Run(ctx context.Context) error {
	src, err := resolveSource(ctx, l.File)
	if err != nil {
		return err
	}

	eng, err := src.load(l.Parse)
	if err != nil {
		return err
	}

	return eng.Run(ctx, StdioFrom(ctx).Out, engine.Request{
		Op:     engine.OpList,
		Output: l.Output,
		Filter: l.Filter,
	})
}
