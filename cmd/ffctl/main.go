// Package main is the entry point for the ffctl CLI client.
package main

import (
	"github.com/donaldgifford/flower-finder/cmd/ffctl/cmd"
)

func main() {
	cmd.Execute()
}
