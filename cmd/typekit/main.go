// Package main provides the typekit CLI.
// Implements: prd003-typekit-cli;
//
//	docs/ARCHITECTURE § CLI.
package main

import "github.com/mesh-intelligence/proptypes/internal/cli"

func main() {
	cli.Execute()
}
