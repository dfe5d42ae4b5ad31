package main

import (
	"os"

	"github.com/jisconv/jisconv/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
