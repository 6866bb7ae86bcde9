// Package executor implements the ways the launcher hands control to the
// packaged binary: Replace (exec in place of the launcher) and Spawn
// (child process, wait, propagate the exit status).
package executor

import (
	"binshim/pkg/layout"
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Target describes the program control is handed to.
type Target struct {
	Path string
	Argv []string // Argv[0] is Path
	Env  []string
}

// NewTarget builds a target whose argument vector is path followed by args.
func NewTarget(path string, args []string, env []string) *Target {
	argv := make([]string, 0, len(args)+1)
	argv = append(argv, path)
	argv = append(argv, args...)
	return &Target{Path: path, Argv: argv, Env: env}
}

// Executor is the interface for handoff strategies.
type Executor interface {
	// Execute hands control to t and returns the exit status the launcher
	// should terminate with. Replace does not return on success.
	Execute(ctx context.Context, t *Target) (int, error)
}

// LaunchError reports that an existing binary could not be started.
type LaunchError struct {
	Op   string // "exec", "spawn" or "wait"
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// ForOS picks the strategy for goos: Spawn on Windows, which cannot replace
// a process image, and Replace everywhere else.
func ForOS(goos string, logger *logrus.Logger) Executor {
	if layout.IsWindows(goos) {
		return &Spawn{Logger: logger}
	}
	return &Replace{Logger: logger}
}

func orDiscard(logger *logrus.Logger) *logrus.Logger {
	if logger != nil {
		return logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
