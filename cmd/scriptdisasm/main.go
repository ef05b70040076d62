// Package main implements a disassembler for game engine script bytecode
package main

import (
	"os"

	"github.com/retroenv/scriptdisasm/internal/cli"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	build := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr, build))
}
