package pluginregistry

import (
	"errors"
	"strings"
	"testing"

	"github.com/AntonioJCosta/dragonsh/internal/core/domain/plugin"
	"github.com/AntonioJCosta/dragonsh/internal/core/domain/shellerr"
	"github.com/AntonioJCosta/dragonsh/internal/core/testutil"
	"github.com/AntonioJCosta/dragonsh/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRegistry returns a registry whose loader hands out one handle per path,
// reusing the handle when the same path is loaded again.
func newRegistry(t *testing.T) (*Registry, map[string]*testutil.MockPluginHandle) {
	t.Helper()
	handles := map[string]*testutil.MockPluginHandle{}
	loader := &testutil.MockPluginLoader{
		LoadFunc: func(path string) (plugin.Handle, error) {
			if strings.Contains(path, "missing") {
				return nil, errors.New("no such file")
			}
			if h, ok := handles[path]; ok {
				return h, nil
			}
			h := &testutil.MockPluginHandle{Symbols: map[string]func([]string) string{
				"plugin_main": func(args []string) string { return "main:" + strings.Join(args, ",") },
			}}
			handles[path] = h
			return h, nil
		},
	}
	return New(loader, logging.NewNop()), handles
}

func TestNew(t *testing.T) {
	t.Run("should panic if loader is nil", func(t *testing.T) {
		assert.Panics(t, func() { New(nil, logging.NewNop()) })
	})
}

func TestRegistry_Load(t *testing.T) {
	reg, _ := newRegistry(t)

	first, err := reg.Load("/plugins/hello.so")
	require.NoError(t, err)
	second, err := reg.Load("/plugins/greet.lua")
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, []string{"/plugins/hello.so", "/plugins/greet.lua"}, paths(reg.List()))
}

func TestRegistry_Load_SameHandleIsNotDuplicated(t *testing.T) {
	reg, _ := newRegistry(t)

	first, err := reg.Load("/plugins/hello.so")
	require.NoError(t, err)
	again, err := reg.Load("/plugins/hello.so")
	require.NoError(t, err)

	assert.Equal(t, first.ID, again.ID)
	assert.Len(t, reg.List(), 1)
}

func TestRegistry_Load_FailureWrapsLoadError(t *testing.T) {
	reg, _ := newRegistry(t)

	_, err := reg.Load("/plugins/missing.so")

	require.Error(t, err)
	assert.ErrorIs(t, err, shellerr.ErrLoad)
	assert.Empty(t, reg.List())
}

func TestRegistry_Call(t *testing.T) {
	reg, _ := newRegistry(t)
	entry, err := reg.Load("/plugins/hello.so")
	require.NoError(t, err)

	out, err := reg.Call(entry, plugin.EntryPoint, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "main:a,b", out)

	_, err = reg.Call(entry, "other", nil)
	assert.ErrorIs(t, err, shellerr.ErrSymbol)
}

func TestRegistry_Unload(t *testing.T) {
	tests := []struct {
		name      string
		selector  string
		wantErr   bool
		wantPaths []string
	}{
		{name: "by id", selector: "2", wantPaths: []string{"/p/alpha.so", "/p/gamma.lua"}},
		{name: "by path fragment removes first match only", selector: "/p/", wantPaths: []string{"/p/beta.so", "/p/gamma.lua"}},
		{name: "by file name", selector: "gamma", wantPaths: []string{"/p/alpha.so", "/p/beta.so"}},
		{name: "unknown id falls back to path match", selector: "42", wantErr: true, wantPaths: []string{"/p/alpha.so", "/p/beta.so", "/p/gamma.lua"}},
		{name: "unknown fragment", selector: "delta", wantErr: true, wantPaths: []string{"/p/alpha.so", "/p/beta.so", "/p/gamma.lua"}},
		{name: "empty selector", selector: "", wantErr: true, wantPaths: []string{"/p/alpha.so", "/p/beta.so", "/p/gamma.lua"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, handles := newRegistry(t)
			for _, p := range []string{"/p/alpha.so", "/p/beta.so", "/p/gamma.lua"} {
				_, err := reg.Load(p)
				require.NoError(t, err)
			}

			removed, err := reg.Unload(tt.selector)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotFound)
			} else {
				require.NoError(t, err)
				assert.True(t, handles[removed.Path].Closed, "unloaded handle should be closed")
			}
			assert.Equal(t, tt.wantPaths, paths(reg.List()))
		})
	}
}

func TestRegistry_UnloadTwiceReportsNotFound(t *testing.T) {
	reg, _ := newRegistry(t)
	_, err := reg.Load("/p/alpha.so")
	require.NoError(t, err)

	_, err = reg.Unload("alpha")
	require.NoError(t, err)
	_, err = reg.Unload("alpha")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistry_IDsAreNotReused(t *testing.T) {
	reg, _ := newRegistry(t)
	_, err := reg.Load("/p/alpha.so")
	require.NoError(t, err)
	_, err = reg.Unload("1")
	require.NoError(t, err)

	entry, err := reg.Load("/p/beta.so")
	require.NoError(t, err)
	assert.Equal(t, 2, entry.ID)
}

func TestRegistry_Close(t *testing.T) {
	reg, handles := newRegistry(t)
	_, err := reg.Load("/p/alpha.so")
	require.NoError(t, err)
	_, err = reg.Load("/p/beta.so")
	require.NoError(t, err)
	handles["/p/beta.so"].CloseFunc = func() error { return errors.New("busy") }

	err = reg.Close()

	assert.ErrorContains(t, err, "busy")
	assert.True(t, handles["/p/alpha.so"].Closed)
	assert.Empty(t, reg.List())
}

func paths(entries []plugin.Entry) []string {
	out := []string{}
	for _, e := range entries {
		out = append(out, e.Path)
	}
	return out
}
