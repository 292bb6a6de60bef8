package cli

import (
	"log/slog"
	"os"
	"os/signal"
)

// guardInterrupts keeps SIGINT from terminating the interactive shell while no
// child process is running. The returned func restores the default handling.
func guardInterrupts(logger *slog.Logger) (stop func()) {
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-interrupts:
				logger.Debug("interrupt received between commands, ignoring")
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(interrupts)
		close(done)
	}
}
