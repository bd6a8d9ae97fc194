package cmd

import (
	"context"
	"strings"

	"github.com/ardnew/envmn/engine"
)

// Format rewrites the input in canonical form.
type Format struct {
	File   string     `arg:"" help:"Input file (default .env)." optional:"" type:"path"`
	Check  bool       `help:"Fail if the input is not formatted. Nothing is written." short:"c"`
	Diff   bool       `help:"Print a line diff against the formatted output."         short:"d"`
	Stdout bool       `help:"Write to stdout instead of the input file."`
	Parse  ParseFlags `embed:""`
}

// Run executes the format command.
func (f *Format) Run(ctx context.Context) error {
	src, err := resolveSource(ctx, f.File)
	if err != nil {
		return err
	}

	eng, err := src.load(f.Parse)
	if err != nil {
		return err
	}

	req := engine.Request{Op: engine.OpFormat, Check: f.Check, Diff: f.Diff}

	if f.Check || f.Diff {
		return eng.Run(ctx, StdioFrom(ctx).Out, req)
	}

	var out strings.Builder

	if err := eng.Run(ctx, &out, req); err != nil {
		return err
	}

	return src.writeBack(ctx, out.String(), f.Stdout)
}
