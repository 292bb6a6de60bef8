package ports

import "github.com/AntonioJCosta/dragonsh/internal/core/domain/alias"

// AliasTable is the read-only name -> command mapping loaded at startup.
type AliasTable interface {
	// Lookup returns the replacement command text for name.
	Lookup(name string) (string, bool)
	// List returns every alias in table order.
	List() []alias.Alias
	Len() int
}
