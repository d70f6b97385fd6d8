// Package main is the entry point for the flower-finder API server.
package main

import (
	"os"

	"github.com/donaldgifford/flower-finder/cmd/flower-finder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
