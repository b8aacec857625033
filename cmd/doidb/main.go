// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the doidb CLI.
package main

import "os"

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}
