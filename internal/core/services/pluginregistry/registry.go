package pluginregistry

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/dragonsh/internal/core/domain/plugin"
	"github.com/AntonioJCosta/dragonsh/internal/core/domain/shellerr"
	"github.com/AntonioJCosta/dragonsh/internal/core/ports"
)

// ErrNotFound is returned when no registry entry matches a selector.
var ErrNotFound = errors.New("plugin not found")

/*
Registry is an append-only arena of loaded plugins. Each entry gets an integer
ID at load time which is never reused, so unloading one entry never changes the
identity of another. It is used from the REPL goroutine only.
*/
type Registry struct {
	loader  ports.PluginLoader
	logger  *slog.Logger
	entries []plugin.Entry
	nextID  int
}

// New creates an empty registry. It panics if loader is nil.
func New(loader ports.PluginLoader, logger *slog.Logger) *Registry {
	if loader == nil {
		panic("plugin loader cannot be nil")
	}
	return &Registry{loader: loader, logger: logger, nextID: 1}
}

/*
Load opens the module at path and appends it to the arena. If the loader hands
back a handle that is already registered (the Go runtime returns the same
plugin for the same file), the existing entry is returned instead.
*/
func (r *Registry) Load(path string) (plugin.Entry, error) {
	handle, err := r.loader.Load(path)
	if err != nil {
		if !errors.Is(err, shellerr.ErrLoad) {
			err = fmt.Errorf("%w: %w", shellerr.ErrLoad, err)
		}
		return plugin.Entry{}, err
	}

	for _, e := range r.entries {
		if e.Handle == handle {
			r.logger.Debug("plugin already loaded", "id", e.ID, "path", e.Path)
			return e, nil
		}
	}

	entry := plugin.Entry{ID: r.nextID, Path: path, Handle: handle}
	r.nextID++
	r.entries = append(r.entries, entry)
	r.logger.Debug("plugin loaded", "id", entry.ID, "path", path, "kind", handle.Kind())
	return entry, nil
}

// Call invokes symbol on the entry synchronously.
func (r *Registry) Call(entry plugin.Entry, symbol string, args []string) (string, error) {
	r.logger.Debug("calling plugin", "id", entry.ID, "symbol", symbol, "args", len(args))
	out, err := entry.Handle.Call(symbol, args)
	if err != nil && !errors.Is(err, shellerr.ErrSymbol) {
		err = fmt.Errorf("%w: %w", shellerr.ErrSymbol, err)
	}
	return out, err
}

// List returns a copy of the entries in load order.
func (r *Registry) List() []plugin.Entry {
	out := make([]plugin.Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

/*
Find resolves a selector to an entry. A selector that parses as an integer
matching a loaded ID selects that entry; otherwise the first entry whose path
contains the selector is chosen.
*/
func (r *Registry) Find(selector string) (plugin.Entry, bool) {
	idx := r.indexOf(selector)
	if idx < 0 {
		return plugin.Entry{}, false
	}
	return r.entries[idx], true
}

// Unload removes at most one entry matching selector (see Find).
func (r *Registry) Unload(selector string) (plugin.Entry, error) {
	idx := r.indexOf(selector)
	if idx < 0 {
		return plugin.Entry{}, fmt.Errorf("%w: %s", ErrNotFound, selector)
	}
	entry := r.entries[idx]
	r.entries = append(r.entries[:idx], r.entries[idx+1:]...)

	if err := entry.Handle.Close(); err != nil {
		r.logger.Warn("closing plugin handle", "id", entry.ID, "path", entry.Path, "error", err)
	}
	r.logger.Debug("plugin unloaded", "id", entry.ID, "path", entry.Path)
	return entry, nil
}

// Close releases every handle. The registry is empty afterwards.
func (r *Registry) Close() error {
	var errs []error
	for _, e := range r.entries {
		if err := e.Handle.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing plugin %d (%s): %w", e.ID, e.Path, err))
		}
	}
	r.entries = nil
	return errors.Join(errs...)
}

func (r *Registry) indexOf(selector string) int {
	if selector == "" {
		return -1
	}
	if id, err := strconv.Atoi(selector); err == nil {
		for i, e := range r.entries {
			if e.ID == id {
				return i
			}
		}
	}
	for i, e := range r.entries {
		if strings.Contains(e.Path, selector) {
			return i
		}
	}
	return -1
}
