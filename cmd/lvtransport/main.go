package main

import (
	"os"
)

var version = "dev"

func main() {
	if err := newRootCommand(&Input{}, os.Stdout, os.Stderr, version).Execute(); err != nil {
		os.Exit(1)
	}
}
