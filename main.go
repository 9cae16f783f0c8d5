package main

import (
	"os"

	"github.com/fhevm-labs/create-fhevm/internal/cli"
	"github.com/fhevm-labs/create-fhevm/internal/ui"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		ui.Errorf(os.Stderr, "%v", err)
		os.Exit(1)
	}
}
