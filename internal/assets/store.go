package assets

import (
	"io/fs"
	"os"
	"strings"

	"github.com/dabingnn/QSanguosha/internal/errors"
)

// Store reports whether an asset exists.
type Store interface {
	Exists(path string) bool
}

// FSStore answers existence checks against a filesystem rooted at the game's
// resource directory. Paths use forward slashes, e.g. "images/generals/card/caocao.jpg".
type FSStore struct {
	fsys fs.FS
}

// FSStoreConfig contains configuration for an FSStore.
type FSStoreConfig struct {
	// FS takes precedence over Root when both are set.
	FS   fs.FS
	Root string
}

// Validate validates the FSStoreConfig.
func (cfg *FSStoreConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.FS == nil && strings.TrimSpace(cfg.Root) == "" {
		return errors.InvalidArgument("either FS or Root is required")
	}
	return nil
}

// NewFSStore creates an asset store.
func NewFSStore(cfg *FSStoreConfig) (*FSStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fsys := cfg.FS
	if fsys == nil {
		fsys = os.DirFS(cfg.Root)
	}

	return &FSStore{fsys: fsys}, nil
}

// Exists reports whether path names a regular file.
func (s *FSStore) Exists(path string) bool {
	if s == nil || !fs.ValidPath(path) {
		return false
	}
	info, err := fs.Stat(s.fsys, path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
