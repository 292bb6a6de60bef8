/*
Package nativeplugin loads Go plugins built with `go build -buildmode=plugin`.

A module must export

	var PluginABI = "dragonsh/1"
	func PluginMain(args []string) string

Entry points are looked up by converting snake_case names to exported Go
names (`plugin_main` -> `PluginMain`) and must have the exact signature
func([]string) string. The Go runtime cannot unload plugins, so Close only
drops the host's reference.
*/
package nativeplugin

import (
	"fmt"
	"os"
	goplugin "plugin"
	"strings"
	"unicode"

	"github.com/AntonioJCosta/dragonsh/internal/core/domain/plugin"
	"github.com/AntonioJCosta/dragonsh/internal/core/domain/shellerr"
	"github.com/AntonioJCosta/dragonsh/internal/core/ports"
)

// ABISymbol is the exported variable carrying the plugin's ABI version.
const ABISymbol = "PluginABI"

// Func is the only entry point signature the host calls.
type Func = func(args []string) string

// opener abstracts plugin.Open so the contract checks can be tested without
// building shared objects.
type opener func(path string) (symbolTable, error)

type symbolTable interface {
	Lookup(name string) (goplugin.Symbol, error)
}

// Loader implements ports.PluginLoader for Go plugins.
type Loader struct {
	open    opener
	handles map[symbolTable]*Handle
}

// NewLoader creates a new Loader backed by the Go plugin package.
func NewLoader() ports.PluginLoader {
	return newLoader(func(path string) (symbolTable, error) {
		return goplugin.Open(path)
	})
}

func newLoader(open opener) *Loader {
	return &Loader{open: open, handles: make(map[symbolTable]*Handle)}
}

// Load opens path and checks the PluginABI contract.
func (l *Loader) Load(path string) (plugin.Handle, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %w", shellerr.ErrLoad, err)
	}
	table, err := l.open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", shellerr.ErrLoad, path, err)
	}
	if h, ok := l.handles[table]; ok {
		return h, nil
	}
	if err := checkABI(table); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", shellerr.ErrLoad, path, err)
	}

	h := &Handle{table: table}
	l.handles[table] = h
	return h, nil
}

func checkABI(table symbolTable) error {
	sym, err := table.Lookup(ABISymbol)
	if err != nil {
		return fmt.Errorf("missing %s export", ABISymbol)
	}
	var version string
	switch v := sym.(type) {
	case *string:
		version = *v
	case string:
		version = v
	default:
		return fmt.Errorf("%s has type %T, want string", ABISymbol, sym)
	}
	if version != plugin.ABIVersion {
		return fmt.Errorf("unsupported ABI %q, want %q", version, plugin.ABIVersion)
	}
	return nil
}

// Handle is a loaded Go plugin.
type Handle struct {
	table symbolTable
}

func (h *Handle) Kind() plugin.Kind {
	return plugin.KindNative
}

// Call resolves symbol on every call; nothing is cached. A panic inside the
// plugin is recovered and reported as a symbol error.
func (h *Handle) Call(symbol string, args []string) (out string, err error) {
	fn, err := h.resolve(symbol)
	if err != nil {
		return "", err
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s panicked: %v", shellerr.ErrSymbol, symbol, r)
		}
	}()
	return fn(args), nil
}

func (h *Handle) resolve(symbol string) (Func, error) {
	name := ExportedName(symbol)
	sym, err := h.table.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%w: function %s (%s) not found", shellerr.ErrSymbol, symbol, name)
	}
	switch fn := sym.(type) {
	case Func:
		return fn, nil
	case *Func:
		if fn != nil && *fn != nil {
			return *fn, nil
		}
	}
	return nil, fmt.Errorf("%w: %s has type %T, want func([]string) string", shellerr.ErrSymbol, name, sym)
}

// Close drops the host reference; Go plugins stay mapped until process exit.
func (h *Handle) Close() error {
	return nil
}

// ExportedName maps a snake_case entry point to its exported Go identifier.
func ExportedName(symbol string) string {
	var sb strings.Builder
	upper := true
	for _, r := range symbol {
		if r == '_' || r == '-' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
