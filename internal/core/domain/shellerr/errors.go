/*
Package shellerr holds the error kinds the shell reports to the user.
Concrete errors wrap one of these sentinels and are matched with errors.Is.
*/
package shellerr

import "errors"

var (
	// ErrConfig marks an unreadable, unparsable or invalid startup configuration.
	ErrConfig = errors.New("configuration error")
	// ErrHistorySetup marks a history file that cannot be prepared at startup.
	ErrHistorySetup = errors.New("history setup error")
	// ErrIO marks file and directory failures while a session is running.
	ErrIO = errors.New("i/o error")
	// ErrLoad marks a plugin that could not be opened or failed its ABI check.
	ErrLoad = errors.New("plugin load error")
	// ErrSymbol marks a missing or incompatible plugin entry point.
	ErrSymbol = errors.New("plugin symbol error")
	// ErrSpawn marks an external command that could not be found or started.
	ErrSpawn = errors.New("spawn error")
	// ErrInterrupted is returned by line readers when the user pressed Ctrl+C.
	ErrInterrupted = errors.New("interrupted")
)

// IsFatal reports whether err must abort startup.
func IsFatal(err error) bool {
	return errors.Is(err, ErrConfig) || errors.Is(err, ErrHistorySetup)
}
