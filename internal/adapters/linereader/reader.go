/*
Package linereader provides interactive line editing with persistent history
and command-name completion on top of readline.
*/
package linereader

import (
	"errors"
	"fmt"
	"os"

	"github.com/AntonioJCosta/dragonsh/internal/core/domain/shellerr"
	"github.com/AntonioJCosta/dragonsh/internal/core/ports"
	"github.com/abiosoft/readline"
	"golang.org/x/term"
)

// DefaultHistoryLimit is the number of lines kept in the history file.
const DefaultHistoryLimit = 1000

// Options configures a ReadlineReader.
type Options struct {
	Prompt       string
	HistoryFile  string
	HistoryLimit int
	// Commands are offered as completions for the first word of a line.
	Commands []string
	// EnvNames lists the variables offered for `$NAME` completion.
	EnvNames func() []string
}

// ReadlineReader implements ports.LineReader on a terminal.
type ReadlineReader struct {
	rl *readline.Instance
}

// New creates a reader on the process terminal.
func New(opts Options) (ports.LineReader, error) {
	limit := opts.HistoryLimit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          opts.Prompt,
		HistoryFile:     opts.HistoryFile,
		HistoryLimit:    limit,
		AutoComplete:    NewCommandCompleter(opts.Commands, opts.EnvNames),
		InterruptPrompt: "^C",
		EOFPrompt:       "^D",
		FuncIsTerminal:  isTerminal,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to initialize line editor: %w", shellerr.ErrHistorySetup, err)
	}
	return &ReadlineReader{rl: rl}, nil
}

func (r *ReadlineReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	return line, translate(err)
}

func (r *ReadlineReader) SetPrompt(prompt string) {
	r.rl.SetPrompt(prompt)
}

func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}

// translate maps readline errors onto the ports.LineReader contract.
func translate(err error) error {
	if errors.Is(err, readline.ErrInterrupt) {
		return shellerr.ErrInterrupted
	}
	return err
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
