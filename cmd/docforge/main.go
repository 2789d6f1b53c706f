package main

import (
	"os"

	"github.com/docforge/docforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
