package executor

import (
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
)

// relaySignals keeps the launcher alive while proc runs so it can report the
// child's exit status. os.Interrupt is swallowed, not forwarded: the terminal
// (or the Windows console) already delivers it to the child's process group.
// relayedSignals are forwarded to proc. The returned function stops relaying.
func relaySignals(proc *os.Process, logger *logrus.Logger) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, append([]os.Signal{os.Interrupt}, relayedSignals...)...)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigCh:
				if sig == os.Interrupt {
					logger.Debugf("ignoring %v while pid %d runs", sig, proc.Pid)
					continue
				}
				if err := proc.Signal(sig); err != nil {
					logger.Debugf("relay %v to pid %d: %v", sig, proc.Pid, err)
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
