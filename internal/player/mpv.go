package player

import (
	"fmt"
	"os"
	"os/exec"

	"tikgrab/internal/media"
)

// MPV implements the Player interface for mpv.
type MPV struct{}

func (m *MPV) Name() string { return "mpv" }

func (m *MPV) Available() bool {
	_, err := exec.LookPath("mpv")
	return err == nil
}

// Play launches mpv on the extracted video URL. The CDN checks the
// outbound identity and referrer, so both are forwarded to the player.
func (m *MPV) Play(video *media.Video, userAgent string) error {
	args := []string{
		video.URL,
		"--really-quiet",
		"--user-agent=" + userAgent,
		"--referrer=https://www.tiktok.com/",
	}
	if video.Title != "" {
		args = append(args, "--force-media-title="+video.Title)
	}

	cmd := exec.Command("mpv", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		// mpv returns non-zero on user quit, which is normal
		if _, ok := err.(*exec.ExitError); ok {
			return nil
		}
		return fmt.Errorf("running mpv: %w", err)
	}

	return nil
}
