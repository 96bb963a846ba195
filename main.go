// Package main is the entry point for the typelens CLI.
package main

import "typelens.dev/pkg/typelens/cmd"

func main() {
	cmd.Execute()
}
