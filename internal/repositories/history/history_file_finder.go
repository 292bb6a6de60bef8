/*
Package history locates and prepares the file the line editor persists
command history to.
*/
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/dragonsh/internal/core/domain/shellerr"
	"github.com/AntonioJCosta/dragonsh/internal/core/ports"
	"github.com/spf13/afero"
)

const historyDir = ".dragonsh"
const historyFilename = "history"

// FileHistoryFinder resolves the history path and makes sure it is writable.
type FileHistoryFinder struct {
	fs       afero.Fs
	homeDir  string
	override string
}

/*
NewFileHistoryFinder creates a finder rooted at homeDir. A non-empty override
replaces the default ~/.dragonsh/history; relative overrides are resolved
against homeDir.
*/
func NewFileHistoryFinder(fs afero.Fs, homeDir, override string) ports.HistoryFileFinder {
	return &FileHistoryFinder{fs: fs, homeDir: homeDir, override: override}
}

// Find implements the ports.HistoryFileFinder interface.
func (f *FileHistoryFinder) Find() (string, error) {
	path, err := f.resolve()
	if err != nil {
		return "", fmt.Errorf("%w: %w", shellerr.ErrHistorySetup, err)
	}
	if err := f.ensure(path); err != nil {
		return "", fmt.Errorf("%w: %s: %w", shellerr.ErrHistorySetup, toUserFriendlyPath(f.homeDir, path), err)
	}
	return path, nil
}

func (f *FileHistoryFinder) resolve() (string, error) {
	if f.override != "" {
		if filepath.IsAbs(f.override) {
			return f.override, nil
		}
		if f.homeDir == "" {
			return "", fmt.Errorf("cannot resolve %s without a home directory", f.override)
		}
		return filepath.Join(f.homeDir, f.override), nil
	}
	if f.homeDir == "" {
		return "", fmt.Errorf("home directory is unknown")
	}
	return filepath.Join(f.homeDir, historyDir, historyFilename), nil
}

// ensure creates the parent directory and checks the file opens for appending.
func (f *FileHistoryFinder) ensure(path string) error {
	if err := f.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	file, err := f.fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening for append: %w", err)
	}
	return file.Close()
}

// toUserFriendlyPath converts a path under homeDir to a ~/-based path.
func toUserFriendlyPath(homeDir, absPath string) string {
	if homeDir == "" {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil || relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return absPath
	}
	return filepath.Join("~", relPath)
}
