// Package main provides the entry point for the needle CLI.
package main

import (
	"os"

	"github.com/haystacksearch/needle/cmd/needle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
