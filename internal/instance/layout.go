package instance

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/MKhiriev/go-sync-hub/internal/compose"
)

const (
	usersDirName        = "users"
	syncConfigDirName   = "config"
	syncConfigFileName  = "config.xml"
	dataDirName         = "data"
	fileBrowserDirName  = "filestash"
	fileBrowserFileName = "config.json"

	dirMode  os.FileMode = 0o755
	fileMode os.FileMode = 0o644
)

// Layout maps a username to its paths. Root is where the hub reads and
// writes; ExternalRoot is the same directory as the container runtime sees
// it and is used only in manifests.
type Layout struct {
	Root         string
	ExternalRoot string
}

// NewLayout returns a Layout. An empty externalRoot defaults to root.
func NewLayout(root, externalRoot string) Layout {
	if externalRoot == "" {
		externalRoot = root
	}
	return Layout{Root: root, ExternalRoot: externalRoot}
}

// usernamePattern keeps a username usable both as a directory name and,
// unchanged, as part of a compose project name.
var usernamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidateUsername rejects names that would escape the users directory or
// that compose would fold onto another user's project.
func ValidateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("%w: %q", ErrInvalidUsername, username)
	}
	return nil
}

func (l Layout) UserDir(username string) string {
	return filepath.Join(l.Root, usersDirName, username)
}

func (l Layout) ComposeFile(username string) string {
	return filepath.Join(l.UserDir(username), compose.ManifestFile)
}

func (l Layout) SyncConfigDir(username string) string {
	return filepath.Join(l.UserDir(username), syncConfigDirName)
}

func (l Layout) SyncConfigFile(username string) string {
	return filepath.Join(l.SyncConfigDir(username), syncConfigFileName)
}

func (l Layout) DataDir(username string) string {
	return filepath.Join(l.UserDir(username), dataDirName)
}

// FileBrowserStateDir is mounted as the file-browser's state directory.
func (l Layout) FileBrowserStateDir(username string) string {
	return filepath.Join(l.UserDir(username), fileBrowserDirName)
}

func (l Layout) FileBrowserConfigDir(username string) string {
	return filepath.Join(l.FileBrowserStateDir(username), syncConfigDirName)
}

func (l Layout) FileBrowserConfigFile(username string) string {
	return filepath.Join(l.FileBrowserConfigDir(username), fileBrowserFileName)
}

// ExternalUserDir is UserDir under ExternalRoot. Manifests always use
// forward slashes.
func (l Layout) ExternalUserDir(username string) string {
	return filepath.ToSlash(filepath.Join(l.ExternalRoot, usersDirName, username))
}

// EnsureDirs creates the user's directory tree.
func (l Layout) EnsureDirs(username string) error {
	for _, dir := range []string{
		l.UserDir(username),
		l.SyncConfigDir(username),
		l.DataDir(username),
		l.FileBrowserConfigDir(username),
	} {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}
