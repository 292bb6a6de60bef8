package oscommand

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/dragonsh/internal/core/ports"
)

// OSProcessKiller force-terminates processes with os.Process.Kill
// (SIGKILL on Unix, TerminateProcess on Windows).
type OSProcessKiller struct{}

// NewOSProcessKiller creates a new OSProcessKiller.
func NewOSProcessKiller() ports.ProcessKiller {
	return &OSProcessKiller{}
}

func (k *OSProcessKiller) Kill(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("finding process %d: %w", pid, err)
	}
	if err := proc.Kill(); err != nil {
		return fmt.Errorf("killing process %d: %w", pid, err)
	}
	return nil
}
