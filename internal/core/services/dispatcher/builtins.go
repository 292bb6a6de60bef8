package dispatcher

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/dragonsh/internal/core/services/aliastable"
	"github.com/spf13/afero"
)

type builtin int

const (
	builtinAlias builtin = iota + 1
	builtinHelp
	builtinVersion
	builtinEcho
	builtinCd
	builtinLf
	builtinKill
	builtinPluginList
	builtinPluginUnload
	builtinPluginCall
)

var builtinNames = map[string]builtin{
	"alias":         builtinAlias,
	"d-help":        builtinHelp,
	"d-version":     builtinVersion,
	"echo":          builtinEcho,
	"cd":            builtinCd,
	"lf":            builtinLf,
	"kill":          builtinKill,
	"plugin-list":   builtinPluginList,
	"plugin-unload": builtinPluginUnload,
	"plugin-call":   builtinPluginCall,
}

type builtinHandler func(d *Dispatcher, ctx context.Context, args []string) string

var builtinHandlers = map[builtin]builtinHandler{
	builtinAlias:        (*Dispatcher).listAliases,
	builtinHelp:         (*Dispatcher).help,
	builtinVersion:      (*Dispatcher).versionText,
	builtinEcho:         (*Dispatcher).echo,
	builtinCd:           (*Dispatcher).changeDir,
	builtinLf:           (*Dispatcher).listFiles,
	builtinKill:         (*Dispatcher).kill,
	builtinPluginList:   (*Dispatcher).listPlugins,
	builtinPluginUnload: (*Dispatcher).unloadPlugin,
	builtinPluginCall:   (*Dispatcher).callPlugin,
}

func lookupBuiltin(name string) (builtin, bool) {
	b, ok := builtinNames[name]
	return b, ok
}

func (b builtin) String() string {
	for name, v := range builtinNames {
		if v == b {
			return name
		}
	}
	return "builtin(" + strconv.Itoa(int(b)) + ")"
}

// CommandNames returns every name the dispatcher handles itself, sorted.
// The line reader uses it for completion.
func CommandNames() []string {
	names := make([]string, 0, len(builtinNames)+3)
	for name := range builtinNames {
		names = append(names, name)
	}
	names = append(names, "run", "plugin", "exit")
	sort.Strings(names)
	return names
}

func (d *Dispatcher) listAliases(_ context.Context, _ []string) string {
	return aliastable.Format(d.aliases)
}

func (d *Dispatcher) help(_ context.Context, _ []string) string {
	return "Welcome to Dragon-shell! Built-in commands: " + strings.Join(CommandNames(), ", ")
}

func (d *Dispatcher) versionText(_ context.Context, _ []string) string {
	return "Dragon-shell " + d.version
}

func (d *Dispatcher) echo(_ context.Context, args []string) string {
	return strings.Join(args, " ")
}

func (d *Dispatcher) changeDir(_ context.Context, args []string) string {
	if len(args) == 0 {
		return "Usage: cd <path>"
	}
	dir, err := d.env.Chdir(args[0])
	if err != nil {
		return fmt.Sprintf("Error changing directory: %v", err)
	}
	return fmt.Sprintf("Changed directory to %s", dir)
}

func (d *Dispatcher) listFiles(_ context.Context, args []string) string {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	target := d.env.Resolve(path)

	info, err := d.env.Fs().Stat(target)
	if err != nil || !info.IsDir() {
		return fmt.Sprintf("Error: '%s' is not a valid directory", path)
	}
	entries, err := afero.ReadDir(d.env.Fs(), target)
	if err != nil {
		return fmt.Sprintf("Error reading directory '%s': %v", path, err)
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.Name(),
			strconv.FormatInt(entry.Size(), 10),
			entry.ModTime().Format(modifiedDateLayout),
		})
	}
	return renderTable([]string{"File Name", "Size (bytes)", "Modified Date"}, rows)
}

func (d *Dispatcher) kill(_ context.Context, args []string) string {
	if len(args) == 0 {
		return "Usage: kill <pid>"
	}
	pid, err := strconv.Atoi(args[0])
	if err != nil || pid <= 0 {
		return fmt.Sprintf("Error terminating process %s: invalid pid", args[0])
	}
	if err := d.killer.Kill(pid); err != nil {
		return fmt.Sprintf("Error terminating process %d: %v", pid, err)
	}
	return fmt.Sprintf("Process %d terminated", pid)
}

func (d *Dispatcher) listPlugins(_ context.Context, _ []string) string {
	entries := d.plugins.List()
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{strconv.Itoa(e.ID), e.Path, string(e.Kind()), "Yes"})
	}
	return renderTable([]string{"ID", "Plugin Path", "Kind", "Loaded"}, rows)
}

func (d *Dispatcher) unloadPlugin(_ context.Context, args []string) string {
	if len(args) == 0 {
		return "Usage: plugin-unload <id|plugin_path>"
	}
	entry, err := d.plugins.Unload(args[0])
	if err != nil {
		return fmt.Sprintf("Plugin %s not found", args[0])
	}
	return fmt.Sprintf("Unloaded plugin: %s", entry.Path)
}

func (d *Dispatcher) callPlugin(_ context.Context, args []string) string {
	if len(args) < 2 {
		return "Usage: plugin-call <id|plugin_path> <function> [args...]"
	}
	entry, ok := d.plugins.Find(args[0])
	if !ok {
		return fmt.Sprintf("Plugin %s not found", args[0])
	}
	out, err := d.plugins.Call(entry, args[1], args[2:])
	if err != nil {
		return fmt.Sprintf("Failed to call plugin function %s: %v", args[1], err)
	}
	return out
}
