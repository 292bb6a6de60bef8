package testutil

import (
	"errors"

	"github.com/AntonioJCosta/dragonsh/internal/core/ports"
)

// MockShellConfigLoader is a mock implementation of ports.ShellConfigLoader for testing.
type MockShellConfigLoader struct {
	LoadFunc func() (ports.ShellConfig, error)
	PathFunc func() string
}

func (m *MockShellConfigLoader) Load() (ports.ShellConfig, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return ports.ShellConfig{}, errors.New("MockShellConfigLoader: LoadFunc not implemented")
}

func (m *MockShellConfigLoader) Path() string {
	if m.PathFunc != nil {
		return m.PathFunc()
	}
	return ""
}

var _ ports.ShellConfigLoader = (*MockShellConfigLoader)(nil)
