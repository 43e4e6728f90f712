package main

import (
	"fmt"
	"os"

	"github.com/darkred-portfolio/backend/internal/cli"
)

// Version is overridden with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	cli.SetVersion(Version)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
