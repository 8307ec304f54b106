// ./main.go
package main

import (
	"github.com/AtlazReso87/QPFT/cmd"
)

// main is the entry point for the qpft CLI.
func main() {
	// Execute the root command defined in the cmd package.
	// It owns all flag parsing, configuration, and command dispatch.
	cmd.Execute()
}
