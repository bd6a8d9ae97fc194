package cmd

import (
	"context"
	"strings"

	"github.com/ardnew/envmn/engine"
)

// Pick moves a block to the end of the input so its values take precedence.
type Pick struct {
	Block  string     `arg:"" help:"Name of the block to move last."`
	File   string     `arg:"" help:"Input file (default .env)."    optional:"" type:"path"`
	Stdout bool       `help:"Write to stdout instead of the input file."`
	Parse  ParseFlags `embed:""`
}

// Run executes the pick command.
func (p *Pick) Run(ctx context.Context) error {
	src, err := resolveSource(ctx, p.File)
	if err != nil {
		return err
	}

	eng, err := src.load(p.Parse)
	if err != nil {
		return err
	}

	var out strings.Builder

	err = eng.Run(ctx, &out, engine.Request{Op: engine.OpPick, Block: p.Block})
	if err != nil {
		return err
	}

	return src.writeBack(ctx, out.String(), p.Stdout)
}
