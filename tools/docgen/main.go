// Package main generates CLI reference documentation from the ffctl command tree.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/donaldgifford/flower-finder/cmd/ffctl/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	manDir := flag.String("man", "", "also generate man pages into this directory")
	flag.Parse()

	if err := generate(cmd.Root(), *output, *manDir); err != nil {
		log.Fatalf("generating docs: %v", err)
	}

	fmt.Printf("CLI docs generated in %s/\n", *output)
}

func generate(root *cobra.Command, output, manDir string) error {
	root.DisableAutoGenTag = true

	if err := os.MkdirAll(output, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := doc.GenMarkdownTree(root, output); err != nil {
		return fmt.Errorf("markdown: %w", err)
	}

	if manDir == "" {
		return nil
	}
	if err := os.MkdirAll(manDir, 0o750); err != nil {
		return fmt.Errorf("creating man directory: %w", err)
	}
	header := &doc.GenManHeader{Title: "FFCTL", Section: "1", Source: "flower-finder"}
	if err := doc.GenManTree(root, header, manDir); err != nil {
		return fmt.Errorf("man pages: %w", err)
	}
	return nil
}
