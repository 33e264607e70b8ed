package player

import (
	"fmt"
	"os"
	"os/exec"

	"tikgrab/internal/media"
)

// VLC implements the Player interface for VLC media player.
type VLC struct{}

func (v *VLC) Name() string { return "vlc" }

func (v *VLC) Available() bool {
	_, err := exec.LookPath("vlc")
	return err == nil
}

// Play launches VLC on the extracted video URL.
func (v *VLC) Play(video *media.Video, userAgent string) error {
	args := []string{
		video.URL,
		"--play-and-exit",
		"--http-user-agent", userAgent,
		"--http-referrer", "https://www.tiktok.com/",
	}
	if video.Title != "" {
		args = append(args, "--meta-title", video.Title)
	}

	cmd := exec.Command("vlc", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			// VLC exits non-zero on user close
			return nil
		}
		return fmt.Errorf("running vlc: %w", err)
	}

	return nil
}
