package main

import (
	"os"

	"trade-compliance/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], cli.Options{
		ConfigPath: ".",
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}))
}
