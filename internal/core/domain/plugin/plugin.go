/*
Package plugin defines the entities of the plugin registry.
*/
package plugin

// ABIVersion is the contract version every plugin must declare.
const ABIVersion = "dragonsh/1"

// EntryPoint is the symbol invoked by the `plugin` built-in.
const EntryPoint = "plugin_main"

// Kind identifies the loader that produced a handle.
type Kind string

const (
	KindNative Kind = "native"
	KindLua    Kind = "lua"
)

// Handle is a loaded plugin module. Implementations must be comparable with ==
// so the registry can detect the same module being loaded twice.
type Handle interface {
	Kind() Kind
	// Call invokes the named entry point with the given arguments.
	// A missing or incompatible symbol yields an error wrapping shellerr.ErrSymbol.
	Call(symbol string, args []string) (string, error)
	// Close releases host-side resources. It does not call into the plugin.
	Close() error
}

// Entry is one slot of the registry arena.
type Entry struct {
	ID     int
	Path   string
	Handle Handle
}

// Kind returns the loader kind of the entry's handle.
func (e Entry) Kind() Kind {
	if e.Handle == nil {
		return ""
	}
	return e.Handle.Kind()
}
