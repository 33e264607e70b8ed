package httputil

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://www.tiktok.com/@jane/video/1", false},
		{"https://vm.tiktok.com/ZMabc", false},
		{"http://www.tiktok.com/@jane/video/1", true},
		{"ftp://example.com/file", true},
		{"https://", true},
		{"not a url at all://", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"normal name", "normal name"},
		{"../../etc/passwd", "passwd"},
		{"file/with/slashes", "slashes"},
		{"col:on*star?quest", "col_on_star_quest"},
		{"", "untitled"},
		{".", "untitled"},
		{"..", "untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SanitizeFilename(tt.input)
			if got != tt.expected {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSafeDownloadPath(t *testing.T) {
	dir := t.TempDir()

	path, err := SafeDownloadPath(dir, "video.mp4")
	if err != nil {
		t.Fatalf("SafeDownloadPath() error = %v", err)
	}
	if !strings.HasPrefix(path, dir+string(filepath.Separator)) {
		t.Errorf("path %q should be inside %q", path, dir)
	}

	// Traversal attempts are neutralized by sanitization
	path, err = SafeDownloadPath(dir, "../../escape.mp4")
	if err != nil {
		t.Fatalf("SafeDownloadPath() error = %v", err)
	}
	if !strings.HasPrefix(path, dir+string(filepath.Separator)) {
		t.Errorf("traversal path %q escaped %q", path, dir)
	}
}
