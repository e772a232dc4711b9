package main

import (
	"os"

	"github.com/melisa48/entertainment-agent/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
