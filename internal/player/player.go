// Package player provides a secure interface for launching media players.
// All player invocations use exec.Command with explicit argument slices.
package player

import "tikgrab/internal/media"

// Player is the interface for media player implementations.
type Player interface {
	// Play starts playback of an extracted video.
	Play(video *media.Video, userAgent string) error

	// Name returns the player name.
	Name() string

	// Available checks if the player binary exists in PATH.
	Available() bool
}

// New creates a player by name.
func New(name string) Player {
	switch name {
	case "mpv":
		return &MPV{}
	case "vlc":
		return &VLC{}
	case "iina", "celluloid":
		return &Generic{name: name}
	default:
		return &MPV{} // Default to mpv
	}
}
