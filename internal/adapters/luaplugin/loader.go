/*
Package luaplugin runs plugins written in Lua on an embedded interpreter.

A plugin file is executed once at load time and must define

	plugin_abi = "dragonsh/1"
	function plugin_main(args) return "..." end

Entry points are global functions receiving the arguments as an array table
and returning a string.
*/
package luaplugin

import (
	"fmt"

	"github.com/AntonioJCosta/dragonsh/internal/core/domain/plugin"
	"github.com/AntonioJCosta/dragonsh/internal/core/domain/shellerr"
	"github.com/AntonioJCosta/dragonsh/internal/core/ports"
	"github.com/Shopify/go-lua"
	"github.com/spf13/afero"
)

// ABIGlobal is the global variable carrying the plugin's ABI version.
const ABIGlobal = "plugin_abi"

// Loader implements ports.PluginLoader for Lua scripts.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a Loader reading plugin sources from fs.
func NewLoader(fs afero.Fs) ports.PluginLoader {
	return &Loader{fs: fs}
}

// Load reads and runs the chunk at path, then checks plugin_abi.
func (l *Loader) Load(path string) (plugin.Handle, error) {
	src, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shellerr.ErrLoad, err)
	}

	state := lua.NewState()
	lua.OpenLibraries(state)
	if err := lua.LoadBuffer(state, string(src), "@"+path, ""); err != nil {
		return nil, fmt.Errorf("%w: %s: compile: %w", shellerr.ErrLoad, path, err)
	}
	if err := state.ProtectedCall(0, 0, 0); err != nil {
		return nil, fmt.Errorf("%w: %s: run: %w", shellerr.ErrLoad, path, err)
	}
	if err := checkABI(state); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", shellerr.ErrLoad, path, err)
	}
	return &Handle{state: state}, nil
}

func checkABI(state *lua.State) error {
	state.Global(ABIGlobal)
	defer state.Pop(1)
	if state.TypeOf(-1) != lua.TypeString {
		return fmt.Errorf("global %s must be a string, got %s", ABIGlobal, typeName(state.TypeOf(-1)))
	}
	version, _ := state.ToString(-1)
	if version != plugin.ABIVersion {
		return fmt.Errorf("unsupported ABI %q, want %q", version, plugin.ABIVersion)
	}
	return nil
}

// Handle is a loaded Lua plugin with its own interpreter state.
type Handle struct {
	state *lua.State
}

func (h *Handle) Kind() plugin.Kind {
	return plugin.KindLua
}

// Call invokes the global function symbol with args as an array table.
func (h *Handle) Call(symbol string, args []string) (string, error) {
	if h.state == nil {
		return "", fmt.Errorf("%w: plugin is closed", shellerr.ErrSymbol)
	}
	state := h.state
	top := state.Top()
	defer state.SetTop(top)

	state.Global(symbol)
	if !state.IsFunction(-1) {
		return "", fmt.Errorf("%w: function %s not found (global is %s)", shellerr.ErrSymbol, symbol, typeName(state.TypeOf(-1)))
	}

	state.CreateTable(len(args), 0)
	for i, arg := range args {
		state.PushString(arg)
		state.RawSetInt(-2, i+1)
	}

	if err := state.ProtectedCall(1, 1, 0); err != nil {
		return "", fmt.Errorf("%w: %s failed: %w", shellerr.ErrSymbol, symbol, err)
	}
	if state.TypeOf(-1) != lua.TypeString {
		return "", fmt.Errorf("%w: %s returned %s, want string", shellerr.ErrSymbol, symbol, typeName(state.TypeOf(-1)))
	}
	out, _ := state.ToString(-1)
	return out, nil
}

// Close drops the interpreter state.
func (h *Handle) Close() error {
	h.state = nil
	return nil
}

func typeName(t lua.Type) string {
	switch t {
	case lua.TypeNil:
		return "nil"
	case lua.TypeBoolean:
		return "boolean"
	case lua.TypeLightUserData, lua.TypeUserData:
		return "userdata"
	case lua.TypeNumber:
		return "number"
	case lua.TypeString:
		return "string"
	case lua.TypeTable:
		return "table"
	case lua.TypeFunction:
		return "function"
	case lua.TypeThread:
		return "thread"
	}
	return "no value"
}
