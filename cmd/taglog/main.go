// Package main is the entry point for taglog.
package main

import (
	"os"

	"taglog/logger"
)

var (
	version = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_ = logger.New(logger.WithTag("taglog")).Error(err)
		os.Exit(1)
	}
}
