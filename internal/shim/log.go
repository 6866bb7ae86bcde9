package shim

import (
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
)

// DebugEnv enables debug tracing on stderr when set to a true value.
const DebugEnv = "BINSHIM_DEBUG"

// NewLogger returns a logger writing to w. Only warnings are shown unless
// debug parses as true.
func NewLogger(w io.Writer, debug string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	logger.SetLevel(logrus.WarnLevel)

	if on, _ := strconv.ParseBool(debug); on {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
