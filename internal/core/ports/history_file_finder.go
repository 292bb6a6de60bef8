package ports

// HistoryFileFinder resolves and prepares the command history file.
type HistoryFileFinder interface {
	// Find returns a writable history file path. Failures wrap shellerr.ErrHistorySetup.
	Find() (string, error)
}
