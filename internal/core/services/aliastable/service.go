package aliastable

import (
	"strings"

	"github.com/AntonioJCosta/dragonsh/internal/core/domain/alias"
	"github.com/AntonioJCosta/dragonsh/internal/core/domain/command"
	"github.com/AntonioJCosta/dragonsh/internal/core/ports"
)

type table struct {
	order    []string
	commands map[string]string
}

// New builds the alias table from configured aliases.
// Duplicate names keep their first position and the last command.
func New(aliases []alias.Alias) ports.AliasTable {
	t := &table{commands: make(map[string]string, len(aliases))}
	for _, a := range aliases {
		if _, exists := t.commands[a.Name]; !exists {
			t.order = append(t.order, a.Name)
		}
		t.commands[a.Name] = a.Command
	}
	return t
}

func (t *table) Lookup(name string) (string, bool) {
	cmd, ok := t.commands[name]
	return cmd, ok
}

func (t *table) List() []alias.Alias {
	out := make([]alias.Alias, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, alias.Alias{Name: name, Command: t.commands[name]})
	}
	return out
}

func (t *table) Len() int {
	return len(t.order)
}

// Format renders every alias as `name -> command`, one per line.
func Format(aliases ports.AliasTable) string {
	lines := make([]string, 0, aliases.Len())
	for _, a := range aliases.List() {
		lines = append(lines, a.Name+" -> "+a.Command)
	}
	return strings.Join(lines, "\n")
}

/*
Expand substitutes an alias for the command name of line. The alias command is
split on whitespace and the typed arguments are appended after it. Expansion is
single-level: the result is not looked up again, so `ls -> ls --color` works.
*/
func Expand(aliases ports.AliasTable, line command.Line) (command.Line, bool) {
	if aliases == nil || line.IsEmpty() {
		return line, false
	}
	replacement, ok := aliases.Lookup(line.Name)
	if !ok {
		return line, false
	}
	fields := strings.Fields(replacement)
	if len(fields) == 0 {
		return line, false
	}
	expanded := command.Line{Original: line.Original, Name: fields[0], Args: fields[1:]}
	return expanded.WithArgs(line.Args...), true
}
