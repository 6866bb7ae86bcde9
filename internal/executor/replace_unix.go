//go:build unix

package executor

import "golang.org/x/sys/unix"

var execve = unix.Exec
