package executor

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Replace replaces the current process image with the target, keeping the
// PID, open descriptors and environment handed to it.
type Replace struct {
	Logger *logrus.Logger
}

// Execute only returns when the replacement failed.
func (r *Replace) Execute(ctx context.Context, t *Target) (int, error) {
	if err := ctx.Err(); err != nil {
		return 1, err
	}

	orDiscard(r.Logger).WithFields(logrus.Fields{
		"path": t.Path,
		"args": t.Argv[1:],
	}).Debug("replacing process image")

	err := execve(t.Path, t.Argv, t.Env)
	return 1, &LaunchError{Op: "exec", Path: t.Path, Err: err}
}
