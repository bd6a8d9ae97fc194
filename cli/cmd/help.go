package cmd

import (
	"context"

	"github.com/alecthomas/kong"
)

// Help prints usage for the whole command tree.
type Help struct{}

// Run executes the help command.
func (*Help) Run(ctx context.Context) error {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return nil
	}

	// A fresh trace has no selected command, so usage starts at the root.
	root, err := kong.Trace(ktx.Kong, nil)
	if err != nil {
		return err
	}

	return root.PrintUsage(false)
}
