package testutil

import (
	"context"
	"errors"

	"github.com/AntonioJCosta/dragonsh/internal/core/domain/environment"
	"github.com/AntonioJCosta/dragonsh/internal/core/ports"
)

// SpawnCall records one invocation of MockProcessLauncher.Spawn.
type SpawnCall struct {
	Name string
	Args []string
	Dir  string
}

// MockProcessLauncher is a mock implementation of ports.ProcessLauncher.
type MockProcessLauncher struct {
	SpawnFunc func(name string, args []string) error
	Calls     []SpawnCall
}

// Spawn records the call and delegates to SpawnFunc, succeeding when it is nil.
func (m *MockProcessLauncher) Spawn(_ context.Context, env *environment.Environment, name string, args []string, _ ports.IOBindings) error {
	call := SpawnCall{Name: name, Args: append([]string{}, args...)}
	if env != nil {
		call.Dir = env.Dir()
	}
	m.Calls = append(m.Calls, call)
	if m.SpawnFunc != nil {
		return m.SpawnFunc(name, args)
	}
	return nil
}

// MockProcessKiller is a mock implementation of ports.ProcessKiller.
type MockProcessKiller struct {
	KillFunc func(pid int) error
	Killed   []int
}

func (m *MockProcessKiller) Kill(pid int) error {
	m.Killed = append(m.Killed, pid)
	if m.KillFunc != nil {
		return m.KillFunc(pid)
	}
	return errors.New("MockProcessKiller.KillFunc not implemented")
}

var (
	_ ports.ProcessLauncher = (*MockProcessLauncher)(nil)
	_ ports.ProcessKiller   = (*MockProcessKiller)(nil)
)
