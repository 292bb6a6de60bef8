/*
Package dispatcher resolves a parsed command line to the code that runs it.

Resolution order, first match wins:
 1. alias substitution (single level)
 2. built-ins
 3. `run <script> [args...]`
 4. `plugin <path> [args...]`
 5. an external program
*/
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/AntonioJCosta/dragonsh/internal/core/domain/command"
	"github.com/AntonioJCosta/dragonsh/internal/core/domain/environment"
	"github.com/AntonioJCosta/dragonsh/internal/core/domain/plugin"
	"github.com/AntonioJCosta/dragonsh/internal/core/ports"
	"github.com/AntonioJCosta/dragonsh/internal/core/services/aliastable"
	"github.com/AntonioJCosta/dragonsh/internal/core/services/pluginregistry"
)

// Deps are the collaborators of a Dispatcher.
type Deps struct {
	Env      *environment.Environment
	Aliases  ports.AliasTable
	Plugins  *pluginregistry.Registry
	Parser   ports.CommandParser
	Launcher ports.ProcessLauncher
	Killer   ports.ProcessKiller
	Streams  ports.IOBindings
	Logger   *slog.Logger
	Version  string
}

// Dispatcher executes one command at a time. It is not safe for concurrent use.
type Dispatcher struct {
	env      *environment.Environment
	aliases  ports.AliasTable
	plugins  *pluginregistry.Registry
	parser   ports.CommandParser
	launcher ports.ProcessLauncher
	killer   ports.ProcessKiller
	streams  ports.IOBindings
	logger   *slog.Logger
	version  string

	scriptDepth int
}

// New creates a Dispatcher. It panics if a required dependency is missing.
func New(deps Deps) *Dispatcher {
	if deps.Env == nil || deps.Plugins == nil || deps.Parser == nil || deps.Launcher == nil || deps.Killer == nil {
		panic("dispatcher: env, plugins, parser, launcher and killer are required")
	}
	if deps.Aliases == nil {
		deps.Aliases = aliastable.New(nil)
	}
	if deps.Streams.Stdout == nil {
		deps.Streams.Stdout = os.Stdout
	}
	if deps.Streams.Stderr == nil {
		deps.Streams.Stderr = os.Stderr
	}
	if deps.Streams.Stdin == nil {
		deps.Streams.Stdin = os.Stdin
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Version == "" {
		deps.Version = "dev"
	}
	return &Dispatcher{
		env:      deps.Env,
		aliases:  deps.Aliases,
		plugins:  deps.Plugins,
		parser:   deps.Parser,
		launcher: deps.Launcher,
		killer:   deps.Killer,
		streams:  deps.Streams,
		logger:   deps.Logger,
		version:  deps.Version,
	}
}

// Env returns the session environment the dispatcher mutates.
func (d *Dispatcher) Env() *environment.Environment {
	return d.env
}

/*
Dispatch runs line. Built-in output is written to the output stream. The
returned error is a reportable failure (script open, plugin load or call,
spawn); it never means the shell itself must stop.
*/
func (d *Dispatcher) Dispatch(ctx context.Context, line command.Line) error {
	if line.IsEmpty() {
		return nil
	}
	if expanded, ok := aliastable.Expand(d.aliases, line); ok {
		d.logger.Debug("alias expanded", "alias", line.Name, "command", expanded.Name)
		line = expanded
	}

	if out, ok := d.Builtin(ctx, line); ok {
		fmt.Fprintln(d.streams.Stdout, out)
		return nil
	}

	switch line.Name {
	case "run":
		return d.runCommand(ctx, line.Args)
	case "plugin":
		return d.pluginCommand(line.Args)
	}

	return d.external(ctx, line)
}

// Builtin runs line if it names a built-in and reports whether it did.
func (d *Dispatcher) Builtin(ctx context.Context, line command.Line) (string, bool) {
	kind, ok := lookupBuiltin(line.Name)
	if !ok {
		return "", false
	}
	d.logger.Debug("dispatching builtin", "builtin", kind.String(), "args", len(line.Args))
	return builtinHandlers[kind](d, ctx, line.Args), true
}

func (d *Dispatcher) runCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(d.streams.Stdout, "Usage: run <script_path> [args...]")
		return nil
	}
	report, err := d.RunScript(ctx, args[0], args[1:])
	if err != nil {
		return fmt.Errorf("error running script: %w", err)
	}
	d.logger.Debug("script finished", "path", args[0], "lines", report.Lines, "failed", report.Failed)
	return nil
}

func (d *Dispatcher) pluginCommand(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(d.streams.Stdout, "Usage: plugin <plugin_path> [args...]")
		return nil
	}
	path := args[0]
	entry, err := d.plugins.Load(d.env.Resolve(path))
	if err != nil {
		return fmt.Errorf("failed to load plugin %s: %w", path, err)
	}

	out, err := d.plugins.Call(entry, plugin.EntryPoint, args[1:])
	if err != nil {
		return fmt.Errorf("failed to run plugin function %s: %w", plugin.EntryPoint, err)
	}
	fmt.Fprintln(d.streams.Stdout, out)
	return nil
}

func (d *Dispatcher) external(ctx context.Context, line command.Line) error {
	d.logger.Debug("spawning external command", "command", line.Name, "args", len(line.Args))
	if err := d.launcher.Spawn(ctx, d.env, line.Name, line.Args, d.streams); err != nil {
		return fmt.Errorf("error executing command '%s': %w", line.Name, err)
	}
	return nil
}

// errScriptDepth stops scripts that run themselves.
var errScriptDepth = errors.New("script nesting too deep")
