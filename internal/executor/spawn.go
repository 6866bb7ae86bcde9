package executor

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Spawn runs the target as a child process and waits for it.
// Nil streams are inherited from the launcher.
type Spawn struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *logrus.Logger
}

// Execute starts the target, waits for it and returns its exit status.
func (s *Spawn) Execute(ctx context.Context, t *Target) (int, error) {
	logger := orDiscard(s.Logger)

	cmd := exec.CommandContext(ctx, t.Path)
	cmd.Args = t.Argv
	cmd.Env = t.Env
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		return 1, &LaunchError{Op: "spawn", Path: t.Path, Err: err}
	}

	logger.WithFields(logrus.Fields{
		"path": t.Path,
		"args": t.Argv[1:],
		"pid":  cmd.Process.Pid,
	}).Debug("spawned child")

	stop := relaySignals(cmd.Process, logger)
	err := cmd.Wait()
	stop()

	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitStatus(exitErr.ProcessState)
		logger.Debugf("child exited with status %d", code)
		return code, nil
	}
	return 1, &LaunchError{Op: "wait", Path: t.Path, Err: err}
}
