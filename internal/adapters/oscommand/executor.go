package oscommand

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/dragonsh/internal/core/domain/environment"
	"github.com/AntonioJCosta/dragonsh/internal/core/domain/shellerr"
	"github.com/AntonioJCosta/dragonsh/internal/core/ports"
)

// ErrNotFound indicates that no executable with the given name is on PATH.
var ErrNotFound = errors.New("executable file not found in PATH")

// OSProcessLauncher implements ports.ProcessLauncher with os/exec.
type OSProcessLauncher struct {
	logger *slog.Logger
}

// NewOSProcessLauncher creates a new OSProcessLauncher.
func NewOSProcessLauncher(logger *slog.Logger) ports.ProcessLauncher {
	return &OSProcessLauncher{logger: logger}
}

/*
Spawn resolves name against the session's PATH (or its working directory when
name contains a path separator) and runs it with the session's directory and
variables. The child's streams are connected directly to streams.

While the child runs, interrupts sent to the shell are forwarded to the child
instead of terminating the shell.
*/
func (l *OSProcessLauncher) Spawn(ctx context.Context, env *environment.Environment, name string, args []string, streams ports.IOBindings) error {
	path, err := lookPath(env, name)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", shellerr.ErrSpawn, name, err)
	}

	cmd := exec.Command(path, args...)
	cmd.Args = append([]string{name}, args...)
	cmd.Dir = env.Dir()
	cmd.Env = env.Environ()
	cmd.Stdin = streams.Stdin
	cmd.Stdout = streams.Stdout
	cmd.Stderr = streams.Stderr

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %s: %w", shellerr.ErrSpawn, name, err)
	}

	done := make(chan struct{})
	defer close(done)
	go l.forwardInterrupts(cmd.Process, name, interrupts, done)

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// A non-zero exit status is the child's business, not a shell failure.
			l.logger.Debug("command exited with status", "command", name, "code", exitErr.ExitCode())
			return nil
		}
		return fmt.Errorf("%w: waiting for %s: %w", shellerr.ErrSpawn, name, err)
	}
	return nil
}

func (l *OSProcessLauncher) forwardInterrupts(child *os.Process, name string, interrupts <-chan os.Signal, done <-chan struct{}) {
	for {
		select {
		case sig := <-interrupts:
			l.logger.Debug("forwarding interrupt", "command", name, "pid", child.Pid)
			if err := child.Signal(sig); err != nil {
				l.logger.Debug("forwarding interrupt failed", "command", name, "error", err)
			}
		case <-done:
			return
		}
	}
}

// lookPath finds the executable for name the way a shell does.
func lookPath(env *environment.Environment, name string) (string, error) {
	if name == "" {
		return "", ErrNotFound
	}
	if strings.ContainsRune(name, os.PathSeparator) || strings.ContainsRune(name, '/') {
		candidate := env.Resolve(name)
		if err := checkExecutable(candidate); err != nil {
			return "", err
		}
		return candidate, nil
	}

	for _, dir := range env.Path() {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(env.Resolve(dir), name)
		if checkExecutable(candidate) == nil {
			return candidate, nil
		}
	}
	return "", ErrNotFound
}

func checkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if info.Mode()&0o111 == 0 {
		return fmt.Errorf("%s: permission denied", path)
	}
	return nil
}
