package instance

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "plain", input: "alice"},
		{name: "digits and separators", input: "b0b-c_d"},
		{name: "dots inside", input: "a.b", wantErr: true},
		{name: "upper case", input: "Alice", wantErr: true},
		{name: "leading dash", input: "-x", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "dot", input: ".", wantErr: true},
		{name: "dot dot", input: "..", wantErr: true},
		{name: "slash", input: "a/b", wantErr: true},
		{name: "backslash", input: `a\b`, wantErr: true},
		{name: "traversal", input: "../etc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidUsername)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLayout_Paths(t *testing.T) {
	l := NewLayout("/srv/hub", "")

	assert.Equal(t, "/srv/hub", l.ExternalRoot)
	assert.Equal(t, filepath.Join("/srv/hub", "users", "alice"), l.UserDir("alice"))
	assert.Equal(t, filepath.Join("/srv/hub", "users", "alice", "docker-compose.yaml"), l.ComposeFile("alice"))
	assert.Equal(t, filepath.Join("/srv/hub", "users", "alice", "config", "config.xml"), l.SyncConfigFile("alice"))
	assert.Equal(t, filepath.Join("/srv/hub", "users", "alice", "data"), l.DataDir("alice"))
	assert.Equal(t, filepath.Join("/srv/hub", "users", "alice", "filestash", "config", "config.json"), l.FileBrowserConfigFile("alice"))
}

func TestLayout_ExternalRoot(t *testing.T) {
	l := NewLayout("/data", "/mnt/host/data")

	assert.Equal(t, filepath.Join("/data", "users", "bob"), l.UserDir("bob"))
	assert.Equal(t, "/mnt/host/data/users/bob", l.ExternalUserDir("bob"))
}

func TestLayout_EnsureDirs(t *testing.T) {
	l := NewLayout(t.TempDir(), "")

	require.NoError(t, l.EnsureDirs("carol"))
	require.NoError(t, l.EnsureDirs("carol"))

	for _, dir := range []string{
		l.UserDir("carol"),
		l.SyncConfigDir("carol"),
		l.DataDir("carol"),
		l.FileBrowserConfigDir("carol"),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}
}
