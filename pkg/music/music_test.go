package music

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultTracks(t *testing.T) {
	tracks := DefaultTracks()
	if len(tracks) != 12 {
		t.Fatalf("len(DefaultTracks()) = %d; want 12", len(tracks))
	}
	got := Albums(tracks)
	want := []string{"Telugu Melodies", "Prema Geethalu", "Folk Rhythms", "Classical Notes"}
	if len(got) != len(want) {
		t.Fatalf("Albums() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Albums()[%d] = %q; want %q", i, got[i], want[i])
		}
	}
	first := tracks[0]
	if first.Duration != 15*time.Second {
		t.Errorf("Duration = %s; want 15s", first.Duration)
	}
	if p := first.Path("music"); p != filepath.Join("music", "Telugu Melodies", "Amma_Paata.wav") {
		t.Errorf("Path() = %q", p)
	}
	if title := first.Title(); title != "Amma Paata" {
		t.Errorf("Title() = %q; want %q", title, "Amma Paata")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		file    string
		content string
		wantErr bool
	}{
		{"tracks.csv", "name,artist,album,frequency,duration\nRaga,Someone,Night,220,2.5\n", false},
		{"tracks.json", `[{"name":"Raga","artist":"Someone","album":"Night","frequency":220,"duration":2.5}]`, false},
		{"tracks.txt", "Raga", true},
		{"invalid.json", `[{"name":"Raga","album":"Night","frequency":0,"duration":2}]`, true},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			tracks, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Load(%q) err = nil; want error", tt.file)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load(%q) err = %v; want nil", tt.file, err)
			}
			if len(tracks) != 1 {
				t.Fatalf("Load(%q) = %d tracks; want 1", tt.file, len(tracks))
			}
			if tracks[0].Duration != 2500*time.Millisecond {
				t.Errorf("Duration = %s; want 2.5s", tracks[0].Duration)
			}
		})
	}
}
