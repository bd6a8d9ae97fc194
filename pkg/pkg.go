//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
)

// Version is the semantic version of the envmn module embedded at build time.
// It is printed by the CLI when users invoke the version subcommand.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "envmn"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Environment manager for .env-style files"
	// DefaultFile is the input file assumed when neither a file argument nor
	// piped standard input is given.
	DefaultFile = ".env"
)

// SemVer returns the parsed form of [Version].
// If the embedded version is not a valid semantic version, the trimmed raw
// string is returned unchanged.
var SemVer = sync.OnceValue(
	func() string {
		raw := strings.TrimSpace(Version)

		v, err := semver.NewVersion(raw)
		if err != nil {
			return raw
		}

		return v.String()
	},
)
