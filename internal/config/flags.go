package config

import (
	"flag"
)

// parses CLI flags for the seed command
func ParseSeedFlags(args []string) Flags {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	categories := fs.Bool("categories", true, "insert the default item categories")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{Categories: *categories}
}
