// Package main is the entry point for the advent CLI.
package main

import "advent.dev/pkg/advent/cmd"

func main() {
	cmd.Execute()
}
