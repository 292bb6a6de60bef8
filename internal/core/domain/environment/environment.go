/*
Package environment models the state a shell session mutates: the working
directory and the variables handed to child processes. Keeping it as a value
instead of touching the process-wide state lets the core run against an
in-memory filesystem in tests.
*/
package environment

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Environment is the working directory, variables and filesystem of a session.
// It is owned by the single REPL goroutine and is not safe for concurrent use.
type Environment struct {
	fs   afero.Fs
	dir  string
	vars map[string]string
}

// New creates an Environment rooted at dir. base is a list of KEY=VALUE
// entries, typically os.Environ().
func New(fs afero.Fs, dir string, base []string) *Environment {
	vars := make(map[string]string, len(base))
	for _, kv := range base {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = value
	}
	return &Environment{
		fs:   fs,
		dir:  filepath.Clean(dir),
		vars: vars,
	}
}

// NewOS creates an Environment backed by the real filesystem, the current
// working directory and the process environment.
func NewOS() (*Environment, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return New(afero.NewOsFs(), wd, os.Environ()), nil
}

// Fs returns the filesystem the session operates on.
func (e *Environment) Fs() afero.Fs {
	return e.fs
}

// Dir returns the current working directory.
func (e *Environment) Dir() string {
	return e.dir
}

// Resolve makes path absolute relative to the working directory.
func (e *Environment) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(e.dir, path)
}

// Chdir changes the working directory. The target must exist and be a
// directory; on failure the working directory is left untouched.
func (e *Environment) Chdir(path string) (string, error) {
	target := e.Resolve(path)
	info, err := e.fs.Stat(target)
	if err != nil {
		return e.dir, err
	}
	if !info.IsDir() {
		return e.dir, &os.PathError{Op: "chdir", Path: target, Err: fmt.Errorf("not a directory")}
	}
	e.dir = target
	return e.dir, nil
}

// Get returns the value of key, or "" when unset.
func (e *Environment) Get(key string) string {
	return e.vars[key]
}

// Lookup returns the value of key and whether it is set.
func (e *Environment) Lookup(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// Set assigns a variable. Later assignments overwrite earlier ones.
func (e *Environment) Set(key, value string) {
	e.vars[key] = value
}

// Environ returns the variables as sorted KEY=VALUE entries.
func (e *Environment) Environ() []string {
	out := make([]string, 0, len(e.vars))
	for k, v := range e.vars {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}

// Names returns the variable names, sorted.
func (e *Environment) Names() []string {
	out := make([]string, 0, len(e.vars))
	for k := range e.vars {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Path returns the directories listed in the PATH variable.
func (e *Environment) Path() []string {
	path := e.vars["PATH"]
	if path == "" {
		return nil
	}
	return filepath.SplitList(path)
}
