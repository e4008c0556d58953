package progress

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "progress.json"))

	records, err := store.Load()
	if err != nil {
		t.Fatalf("Load of missing file: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Errorf("Load of missing file = %v, want empty map", records)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	store := NewFileStore(path)

	reviewed := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	in := map[string]*Record{
		"White - Italian Game": {Mastered: true, LastReviewed: &reviewed, ReviewCount: 3},
		"Black - King's Indian": {},
	}
	if err := store.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	rec := out["White - Italian Game"]
	if rec == nil {
		t.Fatal("saved record not loaded")
	}
	if !rec.Mastered || rec.ReviewCount != 3 {
		t.Errorf("record = %+v", rec)
	}
	if rec.LastReviewed == nil || !rec.LastReviewed.Equal(reviewed) {
		t.Errorf("LastReviewed = %v, want %v", rec.LastReviewed, reviewed)
	}
	if fresh := out["Black - King's Indian"]; fresh == nil || fresh.LastReviewed != nil {
		t.Errorf("zero-value record = %+v", fresh)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := NewFileStore(path).Load()
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("Load error = %v, want ErrCorrupt", err)
	}
	if records == nil || len(records) != 0 {
		t.Errorf("corrupt load = %v, want empty map", records)
	}
}

func TestFileStore_SaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "progress.json")

	if err := NewFileStore(path).Save(map[string]*Record{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("progress file not created: %v", err)
	}
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv("OPENBOOK_PROGRESS", "/tmp/custom.json")

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if path != "/tmp/custom.json" {
		t.Errorf("DefaultPath = %q, want /tmp/custom.json", path)
	}
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("OPENBOOK_PROGRESS", "")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	want := filepath.Join("/tmp/xdg", "openbook", "progress.json")
	if path != want {
		t.Errorf("DefaultPath = %q, want %q", path, want)
	}
}
