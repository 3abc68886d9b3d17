package main

import (
	"fmt"
	"os"

	"github.com/anvil-labs/anvil/internal/cli"
	"github.com/anvil-labs/anvil/internal/ui"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorMsg("%v", err))
		os.Exit(1)
	}
}
