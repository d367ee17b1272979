// Package main provides the entry point for the lathermap CLI tool.
package main

import "github.com/lathercraft/lathermap/cmd/lathermap/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
