//go:build !unix

package executor

import "errors"

// ErrReplaceUnsupported is returned by Replace where the OS has no exec.
var ErrReplaceUnsupported = errors.New("process replacement not supported on this platform")

var execve = func(string, []string, []string) error {
	return ErrReplaceUnsupported
}
