//go:build !unix

package executor

import "os"

var relayedSignals []os.Signal
