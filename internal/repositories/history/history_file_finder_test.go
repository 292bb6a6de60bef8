package history

import (
	"path/filepath"
	"testing"

	"github.com/AntonioJCosta/dragonsh/internal/core/domain/shellerr"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileHistoryFinder_Find(t *testing.T) {
	tests := []struct {
		name     string
		homeDir  string
		override string
		wantPath string
	}{
		{
			name:     "default location",
			homeDir:  "/home/dragon",
			wantPath: "/home/dragon/.dragonsh/history",
		},
		{
			name:     "absolute override",
			homeDir:  "/home/dragon",
			override: "/var/lib/dragonsh/hist",
			wantPath: "/var/lib/dragonsh/hist",
		},
		{
			name:     "relative override resolves against home",
			homeDir:  "/home/dragon",
			override: ".dragon_history",
			wantPath: "/home/dragon/.dragon_history",
		},
		{
			name:     "absolute override without home",
			override: "/tmp/hist",
			wantPath: "/tmp/hist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()

			path, err := NewFileHistoryFinder(fs, tt.homeDir, tt.override).Find()
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.wantPath), path)

			exists, err := afero.Exists(fs, path)
			require.NoError(t, err)
			assert.True(t, exists, "history file should be created")
		})
	}
}

func TestFileHistoryFinder_KeepsExistingHistory(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/home/dragon/.dragonsh/history"
	require.NoError(t, afero.WriteFile(fs, path, []byte("echo hi\nlf\n"), 0o600))

	got, err := NewFileHistoryFinder(fs, "/home/dragon", "").Find()
	require.NoError(t, err)
	assert.Equal(t, path, got)

	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "echo hi\nlf\n", string(content))
}

func TestFileHistoryFinder_Errors(t *testing.T) {
	tests := []struct {
		name     string
		fs       afero.Fs
		homeDir  string
		override string
	}{
		{name: "no home directory", fs: afero.NewMemMapFs()},
		{name: "relative override without home", fs: afero.NewMemMapFs(), override: "hist"},
		{name: "read-only filesystem", fs: afero.NewReadOnlyFs(afero.NewMemMapFs()), homeDir: "/home/dragon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileHistoryFinder(tt.fs, tt.homeDir, tt.override).Find()
			assert.ErrorIs(t, err, shellerr.ErrHistorySetup)
		})
	}
}

func TestToUserFriendlyPath(t *testing.T) {
	tests := []struct {
		name    string
		homeDir string
		in      string
		want    string
	}{
		{name: "home itself", homeDir: "/home/dragon", in: "/home/dragon", want: "~"},
		{name: "inside home", homeDir: "/home/dragon", in: "/home/dragon/.dragonsh/history", want: "~/.dragonsh/history"},
		{name: "sibling with shared prefix", homeDir: "/home/dragon", in: "/home/dragonfly/history", want: "/home/dragonfly/history"},
		{name: "outside home", homeDir: "/home/dragon", in: "/tmp/history", want: "/tmp/history"},
		{name: "unknown home", in: "/tmp/history", want: "/tmp/history"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toUserFriendlyPath(tt.homeDir, tt.in))
		})
	}
}
