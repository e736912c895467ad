package main

import (
	"os"

	"github.com/AreteDriver/claudemd-forge/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
