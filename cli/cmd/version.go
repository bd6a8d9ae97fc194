package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/envmn/pkg"
)

// Version prints the program version.
type Version struct {
	Short bool `help:"Print only the version number." short:"s"`
}

// Run executes the version command.
func (v *Version) Run(ctx context.Context) error {
	out := StdioFrom(ctx).Out

	if v.Short {
		_, err := fmt.Fprintln(out, pkg.SemVer())

		return err
	}

	_, err := fmt.Fprintf(out, "%s version %s\n", pkg.Name, pkg.SemVer())

	return err
}
