// Package main is the entry point for the valorsim CLI, which generates
// rosters and runs seeded match simulations from the terminal.
package main

import "github.com/valorsim/valorsim/internal/cli"

func main() {
	cli.Execute()
}
