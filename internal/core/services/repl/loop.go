package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/AntonioJCosta/dragonsh/internal/core/domain/command"
	"github.com/AntonioJCosta/dragonsh/internal/core/domain/shellerr"
	"github.com/AntonioJCosta/dragonsh/internal/core/ports"
	"github.com/AntonioJCosta/dragonsh/internal/core/services/sanitizer"
)

// ExitCommand is the literal line that ends a session.
const ExitCommand = "exit"

// Dispatcher runs one parsed command line.
type Dispatcher interface {
	Dispatch(ctx context.Context, line command.Line) error
}

// StyleFunc decorates a message before it is printed, e.g. with color.
type StyleFunc func(a ...interface{}) string

// Loop is the read-sanitize-tokenize-dispatch cycle of an interactive session.
type Loop struct {
	reader     ports.LineReader
	parser     ports.CommandParser
	dispatcher Dispatcher
	out        io.Writer
	errOut     io.Writer
	logger     *slog.Logger

	prompt     func() string
	errorStyle StyleFunc
	infoStyle  StyleFunc
}

// Option configures a Loop.
type Option func(*Loop)

// WithPrompt sets the function rendering the prompt before every read.
func WithPrompt(prompt func() string) Option {
	return func(l *Loop) { l.prompt = prompt }
}

// WithStyles sets how error and informational messages are decorated.
func WithStyles(errorStyle, infoStyle StyleFunc) Option {
	return func(l *Loop) {
		if errorStyle != nil {
			l.errorStyle = errorStyle
		}
		if infoStyle != nil {
			l.infoStyle = infoStyle
		}
	}
}

// New creates a Loop. It panics if reader, parser or dispatcher is nil.
func New(reader ports.LineReader, parser ports.CommandParser, dispatcher Dispatcher, out, errOut io.Writer, logger *slog.Logger, opts ...Option) *Loop {
	if reader == nil || parser == nil || dispatcher == nil {
		panic("repl: reader, parser and dispatcher cannot be nil")
	}
	l := &Loop{
		reader:     reader,
		parser:     parser,
		dispatcher: dispatcher,
		out:        out,
		errOut:     errOut,
		logger:     logger,
		errorStyle: fmt.Sprint,
		infoStyle:  fmt.Sprint,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

/*
Run reads and executes lines until `exit`, end of input, a read error, or ctx
cancellation. Ctrl+C only abandons the line being typed. Run returns nil for a
normal end of session and the read error otherwise.
*/
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.prompt != nil {
			l.reader.SetPrompt(l.prompt())
		}

		raw, err := l.reader.ReadLine()
		switch {
		case errors.Is(err, shellerr.ErrInterrupted):
			fmt.Fprintln(l.out, l.infoStyle("Received Ctrl+C, aborting..."))
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(l.out, l.infoStyle("Received Ctrl+D, exiting..."))
			return nil
		case err != nil:
			fmt.Fprintln(l.errOut, l.errorStyle(fmt.Sprintf("Error reading input: %v", err)))
			return fmt.Errorf("reading input: %w", err)
		}

		input := sanitizer.Sanitize(strings.TrimSpace(raw))
		if input == ExitCommand {
			fmt.Fprintln(l.out, l.infoStyle("Goodbye!"))
			return nil
		}

		line := l.parser.Parse(input)
		if line.IsEmpty() {
			continue
		}
		if err := l.dispatcher.Dispatch(ctx, line); err != nil {
			l.logger.Debug("command failed", "command", line.Name, "error", err)
			fmt.Fprintln(l.errOut, l.errorStyle(capitalize(err.Error())))
		}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
