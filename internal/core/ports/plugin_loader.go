package ports

import "github.com/AntonioJCosta/dragonsh/internal/core/domain/plugin"

/*
PluginLoader opens a dynamic module and checks its ABI contract.
This is a driven port implemented by the native and Lua adapters.
*/
type PluginLoader interface {
	// Load opens the module at the absolute path. Failures wrap shellerr.ErrLoad.
	Load(path string) (plugin.Handle, error)
}
