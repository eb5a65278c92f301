// Package main is the entry point for the bookshelf-cli application.
// It registers the database and user management commands and executes them.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/bookshelf/cmd/bookshelf-cli/internal/commands"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := commands.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}

