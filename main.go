// Package main is the entry point for the mutree CLI.
package main

import "mutree.dev/pkg/mutree/cmd"

func main() {
	cmd.Execute()
}
