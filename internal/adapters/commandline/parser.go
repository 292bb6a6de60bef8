package commandline

import (
	"strings"

	"github.com/AntonioJCosta/dragonsh/internal/core/domain/command"
	"github.com/AntonioJCosta/dragonsh/internal/core/ports"
)

// FieldsParser splits lines on runs of whitespace. There are no quoting or
// escaping rules: `echo "a b"` yields the arguments `"a` and `b"`.
type FieldsParser struct{}

// NewFieldsParser creates a new FieldsParser.
func NewFieldsParser() ports.CommandParser {
	return &FieldsParser{}
}

// Parse breaks a line into its command name and arguments.
func (p *FieldsParser) Parse(line string) command.Line {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command.Line{Original: line, Args: []string{}}
	}

	return command.Line{
		Original: line,
		Name:     fields[0],
		Args:     fields[1:],
	}
}
