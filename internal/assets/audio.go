package assets

import (
	"fmt"
	"log/slog"

	"github.com/dabingnn/QSanguosha/internal/errors"
)

const (
	// WinAudioDir holds the clips played when a general wins.
	WinAudioDir = "audio/win"
	// DeathAudioDir holds the clips played when a general dies.
	DeathAudioDir = "audio/death"

	audioExt = "ogg"
)

// Player plays an effect file. Play must not block on playback.
type Player interface {
	Play(path string)
}

// LogPlayer is a Player that only records the request in the log.
type LogPlayer struct{}

// Play logs the effect path.
func (LogPlayer) Play(path string) {
	slog.Info("play effect", "path", path)
}

// AudioLibrary resolves clip paths against a Store and forwards playback to a Player.
type AudioLibrary struct {
	store  Store
	player Player
}

// AudioLibraryConfig contains configuration for an AudioLibrary.
type AudioLibraryConfig struct {
	Store  Store
	Player Player
}

// Validate validates the AudioLibraryConfig.
func (cfg *AudioLibraryConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Store == nil {
		return errors.InvalidArgument("store cannot be nil")
	}
	return nil
}

// NewAudioLibrary creates an AudioLibrary. A nil Player logs effects instead of playing them.
func NewAudioLibrary(cfg *AudioLibraryConfig) (*AudioLibrary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	player := cfg.Player
	if player == nil {
		player = LogPlayer{}
	}

	return &AudioLibrary{
		store:  cfg.Store,
		player: player,
	}, nil
}

// AudioPath returns "<dir>/<key>.ogg" when that file exists.
func (a *AudioLibrary) AudioPath(dir, key string) (string, bool) {
	if key == "" {
		return "", false
	}
	path := fmt.Sprintf("%s/%s.%s", dir, key, audioExt)
	if !a.store.Exists(path) {
		return "", false
	}
	return path, true
}

// PlayEffect hands path to the player. Empty paths are ignored.
func (a *AudioLibrary) PlayEffect(path string) {
	if path == "" {
		return
	}
	a.player.Play(path)
}
