// Command shim is the launcher shipped next to a packaged binary.
// It finds bin/<name> beside itself and hands control to it, forwarding
// all arguments and the exit status.
//
// The name and the reinstall hint are set at build time:
//
//	go build -ldflags "-X main.binName=tool -X 'main.reinstallHint=pip install tool'" ./cmd/shim
//
// When unset they are read from shim.yaml in the install directory.
package main

import (
	"binshim/internal/shim"
	"os"
)

var (
	binName       string
	reinstallHint string
)

func main() {
	os.Exit(shim.Run(binName, reinstallHint, os.Args[1:]))
}
