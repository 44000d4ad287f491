package main

import (
	"os"

	"github.com/rustyeddy/throttle/cmd/throttle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
