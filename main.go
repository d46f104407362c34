// Package main is the entry point for the fixture CLI.
package main

import "fixture.dev/pkg/fixture/cmd"

func main() {
	cmd.Execute()
}
