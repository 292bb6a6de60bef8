/*
Package alias defines the core domain entity for an alias.
*/
package alias

/*
Alias maps an invocation name to the command text it expands to.
Aliases are loaded once from the startup configuration and never mutated.
*/
type Alias struct {
	Name    string `yaml:"name" validate:"required,nospace"`
	Command string `yaml:"command" validate:"required"`
}
