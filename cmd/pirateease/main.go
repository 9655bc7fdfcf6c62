package main

import (
	"os"

	"github.com/brysenPfingsten/PirateEase/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
