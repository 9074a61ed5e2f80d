package main

import (
	"fmt"
	"os"

	"github.com/idilsaglam/playgrounds/internal/cli"
)

func main() {
	// Flags, config and subcommands are resolved by the CLI runner.
	code := cli.Run(os.Args[1:], cli.Options{})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
