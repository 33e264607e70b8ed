package history

import (
	"testing"

	"tikgrab/internal/media"
)

func entry(url, title string) media.HistoryEntry {
	return media.HistoryEntry{
		PageURL:  url,
		Title:    title,
		Author:   "@jane",
		VideoURL: "https://cdn.example/v.mp4",
		Source:   "universal_data",
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	e := entry("https://www.tiktok.com/@jane/video/1", "first video")
	if err := Save(e); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0] != e {
		t.Errorf("entry = %+v, want %+v", entries[0], e)
	}
}

func TestSaveUpdatesExisting(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	url := "https://www.tiktok.com/@jane/video/1"
	if err := Save(entry(url, "old title")); err != nil {
		t.Fatal(err)
	}
	if err := Save(entry(url, "new title")); err != nil {
		t.Fatal(err)
	}

	entries, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1 (same URL should update in place)", len(entries))
	}
	if entries[0].Title != "new title" {
		t.Errorf("Title = %q, want updated title", entries[0].Title)
	}
}

func TestRemove(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	keep := entry("https://www.tiktok.com/@jane/video/1", "keep")
	drop := entry("https://www.tiktok.com/@jane/video/2", "drop")
	if err := Save(keep); err != nil {
		t.Fatal(err)
	}
	if err := Save(drop); err != nil {
		t.Fatal(err)
	}

	if err := Remove(drop.PageURL); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	entries, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].PageURL != keep.PageURL {
		t.Errorf("entries = %+v, want only the kept entry", entries)
	}
}

func TestClear(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	if err := Save(entry("https://www.tiktok.com/@jane/video/1", "x")); err != nil {
		t.Fatal(err)
	}
	if err := Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	entries, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries after Clear, want 0", len(entries))
	}

	// Clearing an already-empty history is fine
	if err := Clear(); err != nil {
		t.Errorf("Clear() on missing file error = %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	entries, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if entries != nil {
		t.Errorf("entries = %+v, want nil for missing file", entries)
	}
}

func TestTitleWithTabsStaysParseable(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	e := entry("https://www.tiktok.com/@jane/video/1", "title\twith\ttabs\nand newline")
	if err := Save(e); err != nil {
		t.Fatal(err)
	}

	entries, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].VideoURL != e.VideoURL {
		t.Errorf("VideoURL = %q, columns shifted by unescaped title", entries[0].VideoURL)
	}
}

func TestFormatForDisplay(t *testing.T) {
	entries := []media.HistoryEntry{
		entry("https://www.tiktok.com/@jane/video/1", "a caption"),
		{PageURL: "https://vm.tiktok.com/ZMabc"},
	}

	items := FormatForDisplay(entries)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0] != "a caption (@jane)" {
		t.Errorf("items[0] = %q", items[0])
	}
	// Entries without a title fall back to the page URL
	if items[1] != "https://vm.tiktok.com/ZMabc" {
		t.Errorf("items[1] = %q", items[1])
	}
}
