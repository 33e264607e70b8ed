// Package download saves extracted videos to local files.
// Output paths are validated against directory traversal attacks.
package download

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"tikgrab/internal/httputil"
	"tikgrab/internal/media"
)

// maxVideoSize caps a single download.
const maxVideoSize = 500 * 1024 * 1024 // 500MB

// Download fetches the video behind a record to a local mp4 file and
// returns the written path. The CDN checks the Referer and User-Agent
// headers, so the same outbound identity used for the page fetch is
// sent here.
func Download(video *media.Video, outputDir, userAgent string) (string, error) {
	if err := httputil.ValidateURL(video.URL); err != nil {
		return "", fmt.Errorf("invalid video URL: %w", err)
	}

	absDir, err := filepath.Abs(outputDir)
	if err != nil {
		return "", fmt.Errorf("resolving output directory: %w", err)
	}
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	outputPath, err := httputil.SafeDownloadPath(absDir, filename(video))
	if err != nil {
		return "", fmt.Errorf("invalid output path: %w", err)
	}

	client := httputil.NewClient(5 * time.Minute)
	req, err := http.NewRequest(http.MethodGet, video.URL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", "https://www.tiktok.com/")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading video: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("video download returned status %d", resp.StatusCode)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("creating output file: %w", err)
	}

	if _, err := io.Copy(f, io.LimitReader(resp.Body, maxVideoSize)); err != nil {
		f.Close()
		os.Remove(outputPath) // Clean up partial download on failure
		return "", fmt.Errorf("writing video file: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing output file: %w", err)
	}

	return outputPath, nil
}

// filename derives a local filename from the record: author and title
// when present, a generic name otherwise.
func filename(video *media.Video) string {
	name := video.Title
	if video.Author != "" {
		if name != "" {
			name = video.Author + " " + name
		} else {
			name = video.Author
		}
	}
	if name == "" {
		name = "tiktok-video"
	}
	if len(name) > 120 {
		name = name[:120]
	}
	return httputil.SanitizeFilename(name) + ".mp4"
}
