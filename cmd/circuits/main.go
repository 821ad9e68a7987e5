// Package main is the entry point for the circuits CLI.
//
// circuits reads 3D junction box coordinates, one "x,y,z" record per line,
// connects them shortest edge first and reports on the clusters that form.
//
// Commands: bounded, span, solve, tree, version.
//
// For detailed usage information, run:
//
//	circuits --help
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/circuits/cmd/circuits/commands"
)

// Version information set at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
