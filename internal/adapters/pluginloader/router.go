/*
Package pluginloader picks the plugin loader for a path by its file extension.
*/
package pluginloader

import (
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/dragonsh/internal/core/domain/plugin"
	"github.com/AntonioJCosta/dragonsh/internal/core/ports"
)

// Router implements ports.PluginLoader by delegating on the file extension.
type Router struct {
	byExt    map[string]ports.PluginLoader
	fallback ports.PluginLoader
}

// NewRouter routes .lua files to lua and everything else to native.
func NewRouter(native, lua ports.PluginLoader) ports.PluginLoader {
	if native == nil || lua == nil {
		panic("pluginloader: native and lua loaders are required")
	}
	return &Router{
		byExt:    map[string]ports.PluginLoader{".lua": lua},
		fallback: native,
	}
}

func (r *Router) Load(path string) (plugin.Handle, error) {
	return r.loaderFor(path).Load(path)
}

func (r *Router) loaderFor(path string) ports.PluginLoader {
	if loader, ok := r.byExt[strings.ToLower(filepath.Ext(path))]; ok {
		return loader
	}
	return r.fallback
}
