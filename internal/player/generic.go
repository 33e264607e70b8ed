package player

import (
	"fmt"
	"os"
	"os/exec"

	"tikgrab/internal/media"
)

// Generic implements the Player interface for players like iina and celluloid
// that accept mpv-compatible arguments.
type Generic struct {
	name string
}

func (g *Generic) Name() string { return g.name }

func (g *Generic) Available() bool {
	_, err := exec.LookPath(g.name)
	return err == nil
}

// Play launches the generic player with mpv-style flags.
func (g *Generic) Play(video *media.Video, userAgent string) error {
	args := []string{
		video.URL,
		"--user-agent=" + userAgent,
	}
	if video.Title != "" {
		args = append(args, "--force-media-title="+video.Title)
	}

	cmd := exec.Command(g.name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return nil
		}
		return fmt.Errorf("running %s: %w", g.name, err)
	}

	return nil
}
