package testutil

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/dragonsh/internal/core/domain/plugin"
	"github.com/AntonioJCosta/dragonsh/internal/core/domain/shellerr"
	"github.com/AntonioJCosta/dragonsh/internal/core/ports"
)

// MockPluginHandle is a mock implementation of plugin.Handle.
// Symbols maps entry point names to their implementations.
type MockPluginHandle struct {
	KindValue plugin.Kind
	Symbols   map[string]func(args []string) string
	CloseFunc func() error

	Calls  []string
	Closed bool
}

func (m *MockPluginHandle) Kind() plugin.Kind {
	if m.KindValue == "" {
		return plugin.KindNative
	}
	return m.KindValue
}

// Call looks the symbol up in Symbols and records the call.
func (m *MockPluginHandle) Call(symbol string, args []string) (string, error) {
	m.Calls = append(m.Calls, symbol)
	fn, ok := m.Symbols[symbol]
	if !ok {
		return "", fmt.Errorf("%w: symbol %q not found", shellerr.ErrSymbol, symbol)
	}
	return fn(args), nil
}

func (m *MockPluginHandle) Close() error {
	m.Closed = true
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// MockPluginLoader is a mock implementation of ports.PluginLoader.
type MockPluginLoader struct {
	LoadFunc func(path string) (plugin.Handle, error)
	Loaded   []string
}

func (m *MockPluginLoader) Load(path string) (plugin.Handle, error) {
	m.Loaded = append(m.Loaded, path)
	if m.LoadFunc != nil {
		return m.LoadFunc(path)
	}
	return nil, errors.New("MockPluginLoader.LoadFunc not implemented")
}

// Ensure the mocks satisfy their interfaces.
var (
	_ plugin.Handle      = (*MockPluginHandle)(nil)
	_ ports.PluginLoader = (*MockPluginLoader)(nil)
)
