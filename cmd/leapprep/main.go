// Package main provides the CLI for the LeapPrep data preprocessing toolkit.
package main

import (
	"os"

	"github.com/leapstack-labs/leapprep/internal/cli"
	"github.com/leapstack-labs/leapprep/internal/cli/commands"
)

func main() {
	os.Exit(commands.ExitCode(cli.Execute()))
}
