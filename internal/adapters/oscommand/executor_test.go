package oscommand

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/AntonioJCosta/dragonsh/internal/core/domain/environment"
	"github.com/AntonioJCosta/dragonsh/internal/core/domain/shellerr"
	"github.com/AntonioJCosta/dragonsh/internal/core/ports"
	"github.com/AntonioJCosta/dragonsh/internal/logging"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipWithoutUnixShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

// writeExecutable creates a shell script named name in dir.
func writeExecutable(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func newEnv(t *testing.T, binDir string, extra ...string) *environment.Environment {
	t.Helper()
	work := t.TempDir()
	return environment.New(afero.NewOsFs(), work, append([]string{"PATH=" + binDir}, extra...))
}

func TestOSProcessLauncher_SpawnUsesSessionEnvironment(t *testing.T) {
	skipWithoutUnixShell(t)
	bin := t.TempDir()
	writeExecutable(t, bin, "show", `echo "$1 $DRAGON_GREETING $(pwd)"`)
	env := newEnv(t, bin, "DRAGON_GREETING=roar")

	var out bytes.Buffer
	launcher := NewOSProcessLauncher(logging.NewNop())
	err := launcher.Spawn(context.Background(), env, "show", []string{"hi"}, ports.IOBindings{Stdout: &out, Stderr: &out})

	require.NoError(t, err)
	wd, err := filepath.EvalSymlinks(env.Dir())
	require.NoError(t, err)
	assert.Contains(t, []string{"hi roar " + env.Dir() + "\n", "hi roar " + wd + "\n"}, out.String())
}

func TestOSProcessLauncher_NonZeroExitIsNotAnError(t *testing.T) {
	skipWithoutUnixShell(t)
	bin := t.TempDir()
	writeExecutable(t, bin, "fail", "exit 3")
	env := newEnv(t, bin)

	err := NewOSProcessLauncher(logging.NewNop()).Spawn(context.Background(), env, "fail", nil, ports.IOBindings{})

	assert.NoError(t, err)
}

func TestOSProcessLauncher_RelativePath(t *testing.T) {
	skipWithoutUnixShell(t)
	env := newEnv(t, "")
	writeExecutable(t, env.Dir(), "local.sh", "echo local")

	var out bytes.Buffer
	err := NewOSProcessLauncher(logging.NewNop()).Spawn(context.Background(), env, "./local.sh", nil, ports.IOBindings{Stdout: &out})

	require.NoError(t, err)
	assert.Equal(t, "local\n", out.String())
}

func TestOSProcessLauncher_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		command string
	}{
		{name: "not on PATH", command: "dragonsh-no-such-command"},
		{name: "missing relative path", command: "./missing"},
		{name: "empty name", command: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newEnv(t, t.TempDir())

			err := NewOSProcessLauncher(logging.NewNop()).Spawn(context.Background(), env, tt.command, nil, ports.IOBindings{})

			require.Error(t, err)
			assert.ErrorIs(t, err, shellerr.ErrSpawn)
		})
	}
}

func TestOSProcessLauncher_NonExecutableFile(t *testing.T) {
	bin := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(bin, "data"), []byte("x"), 0o644))
	env := newEnv(t, bin)

	err := NewOSProcessLauncher(logging.NewNop()).Spawn(context.Background(), env, "data", nil, ports.IOBindings{})

	assert.ErrorIs(t, err, shellerr.ErrSpawn)
	assert.ErrorIs(t, err, ErrNotFound)
}
