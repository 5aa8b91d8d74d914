// Command tomasim is the text-only stand-in for the out-of-scope GUI
// collaborator of spec.md §1: it parses a program and hardware
// configuration, drives the engine, and prints snapshots/terminal
// statistics instead of rendering them in a window.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
