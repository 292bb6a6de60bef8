package ports

import (
	"context"
	"io"

	"github.com/AntonioJCosta/dragonsh/internal/core/domain/environment"
)

// IOBindings are the streams a child process is connected to.
type IOBindings struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// ProcessLauncher runs external programs.
type ProcessLauncher interface {
	/*
	   Spawn runs name with args in env's working directory and variables, blocking
	   until the child exits. Only a failure to find or start the program is an
	   error (wrapping shellerr.ErrSpawn); a non-zero exit status is not.
	*/
	Spawn(ctx context.Context, env *environment.Environment, name string, args []string, streams IOBindings) error
}

// ProcessKiller force-terminates OS processes.
type ProcessKiller interface {
	Kill(pid int) error
}
