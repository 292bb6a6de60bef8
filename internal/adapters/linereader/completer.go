package linereader

import (
	"sort"
	"strings"
)

/*
CommandCompleter completes the first word of a line from a fixed set of
command names, and any `$`-prefixed word from the current variable names.
It implements readline.AutoCompleter.
*/
type CommandCompleter struct {
	commands []string
	envNames func() []string
}

// NewCommandCompleter creates a completer over a sorted copy of commands.
// envNames is called on every completion so later `env` changes show up; it may be nil.
func NewCommandCompleter(commands []string, envNames func() []string) *CommandCompleter {
	sorted := append([]string(nil), commands...)
	sort.Strings(sorted)
	return &CommandCompleter{commands: sorted, envNames: envNames}
}

/*
Do returns the suffixes completing the word under the cursor and the length of
that word. A word starting with `$` completes to a variable name in any
position; otherwise only the command position is completed.
*/
func (c *CommandCompleter) Do(line []rune, pos int) ([][]rune, int) {
	if pos > len(line) {
		pos = len(line)
	}
	head := string(line[:pos])
	word := head[strings.LastIndexAny(head, " \t")+1:]

	if strings.HasPrefix(word, "$") {
		return c.completeVariable(word)
	}
	if strings.ContainsAny(strings.TrimLeft(head, " \t"), " \t") {
		return nil, 0
	}
	return completeFrom(c.commands, word, " "), len([]rune(word))
}

func (c *CommandCompleter) completeVariable(word string) ([][]rune, int) {
	if c.envNames == nil {
		return nil, 0
	}
	names := c.envNames()
	sort.Strings(names)
	return completeFrom(names, word[1:], ""), len([]rune(word))
}

// completeFrom returns the remainders of the candidates starting with prefix.
func completeFrom(candidates []string, prefix, suffix string) [][]rune {
	var out [][]rune
	for _, name := range candidates {
		if strings.HasPrefix(name, prefix) {
			out = append(out, []rune(name[len(prefix):]+suffix))
		}
	}
	return out
}
