//go:build unix

package executor

import (
	"os"
	"syscall"
)

var relayedSignals = []os.Signal{syscall.SIGTERM, syscall.SIGHUP}
