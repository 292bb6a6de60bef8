package ports

import "github.com/AntonioJCosta/dragonsh/internal/core/domain/command"

/*
CommandParser splits a sanitized input line into a command name and arguments.
This is a driven port, representing a domain capability.
*/
type CommandParser interface {
	Parse(line string) command.Line
}
