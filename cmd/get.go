package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tikgrab/internal/download"
	"tikgrab/internal/extract"
	"tikgrab/internal/history"
	"tikgrab/internal/media"
	"tikgrab/internal/player"
	"tikgrab/internal/provider"
)

// getRun is the default command: tikgrab <url>
func getRun(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	pageURL := args[0]

	if !provider.IsVideoURL(pageURL) {
		return fmt.Errorf("not a recognized TikTok video link: %q\nexpected tiktok.com/@user/video/<id>, vm.tiktok.com/<code>, or tiktok.com/t/<code>", pageURL)
	}

	debugf("fetching: %s", pageURL)

	t := provider.New(cfg.UserAgent, cfg.RequestTimeout())
	html, err := t.FetchPage(pageURL)
	if err != nil {
		return err
	}

	debugf("fetched %d bytes", len(html))

	video, err := extract.Extract(html)
	if err != nil {
		return err
	}

	debugf("extracted via %s", video.Source)

	if cfg.History {
		err := history.Save(media.HistoryEntry{
			PageURL:  pageURL,
			Title:    video.Title,
			Author:   video.Author,
			VideoURL: video.URL,
			Source:   video.Source,
		})
		if err != nil {
			debugf("saving history: %v", err)
		}
	}

	if err := printVideo(video); err != nil {
		return err
	}

	if flagDownload {
		dir, err := cfg.ExpandDownloadDir()
		if err != nil {
			return err
		}
		path, err := download.Download(video, dir, cfg.UserAgent)
		if err != nil {
			return fmt.Errorf("download failed: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved to: %s\n", path)
	}

	if flagPlay {
		p := player.New(cfg.Player)
		if !p.Available() {
			return fmt.Errorf("player %q not found in PATH", p.Name())
		}
		if err := p.Play(video, cfg.UserAgent); err != nil {
			return fmt.Errorf("playback failed: %w", err)
		}
	}

	return nil
}

// printVideo writes the record to stdout, as JSON or plain fields.
func printVideo(video *media.Video) error {
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(video)
	}

	if video.Title != "" {
		fmt.Println("Title:    ", video.Title)
	}
	if video.Author != "" {
		fmt.Println("Author:   ", video.Author)
	}
	if video.Thumbnail != "" {
		fmt.Println("Thumbnail:", video.Thumbnail)
	}
	fmt.Println("Video:    ", video.URL)
	return nil
}
