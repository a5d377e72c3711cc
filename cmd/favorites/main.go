// Package main provides the favorites program: a desktop record of favorite
// T-pop artists, with a few headless subcommands for scripting.
package main

import "github.com/mesh-intelligence/favorites/internal/cli"

func main() {
	cli.Execute()
}
