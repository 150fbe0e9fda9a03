package music

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
)

// Track describes a placeholder track to be synthesized.
type Track struct {
	Name      string        `json:"name" csv:"name"`
	Artist    string        `json:"artist" csv:"artist"`
	Album     string        `json:"album" csv:"album"`
	Frequency float64       `json:"frequency" csv:"frequency"`
	Duration  time.Duration `json:"-" csv:"-"`
	Seconds   float64       `json:"duration" csv:"duration"`
}

// Title returns the human readable title of the track.
func (t *Track) Title() string {
	return strings.ReplaceAll(t.Name, "_", " ")
}

func (t *Track) Filename() string {
	return t.Name + ".wav"
}

// Path returns the location of the track inside the library root.
func (t *Track) Path(root string) string {
	return filepath.Join(root, t.Album, t.Filename())
}

func track(name, artist, album string, freq float64, secs int) *Track {
	return &Track{
		Name:      name,
		Artist:    artist,
		Album:     album,
		Frequency: freq,
		Duration:  time.Duration(secs) * time.Second,
		Seconds:   float64(secs),
	}
}

// DefaultTracks returns the demo track table.
func DefaultTracks() []*Track {
	return []*Track{
		track("Amma_Paata", "Demo Artist", "Telugu Melodies", 261.63, 15),
		track("Vaana_Villulu", "Demo Artist", "Telugu Melodies", 293.66, 12),
		track("Chandamama", "Priya", "Telugu Melodies", 329.63, 14),
		track("Naa_Hrudayam", "Priya", "Prema Geethalu", 349.23, 13),
		track("Gali_Chirugali", "Ravi Kumar", "Prema Geethalu", 392.00, 16),
		track("Edo_Oka_Raagam", "Ravi Kumar", "Prema Geethalu", 440.00, 11),
		track("Telangana_Beats", "Demo Beats", "Folk Rhythms", 493.88, 10),
		track("Janapadham", "Demo Beats", "Folk Rhythms", 523.25, 14),
		track("Pacha_Bottesina", "Demo Beats", "Folk Rhythms", 587.33, 12),
		track("Swaraalu", "Sangeetha", "Classical Notes", 659.25, 15),
		track("Raaga_Tarangalu", "Sangeetha", "Classical Notes", 698.46, 13),
		track("Nuvvu_Naaku", "Sangeetha", "Classical Notes", 783.99, 11),
	}
}

// Albums returns the distinct album names in order of appearance.
func Albums(tracks []*Track) []string {
	seen := map[string]struct{}{}
	var albums []string
	for _, t := range tracks {
		if _, ok := seen[t.Album]; ok {
			continue
		}
		seen[t.Album] = struct{}{}
		albums = append(albums, t.Album)
	}
	return albums
}

// Load reads a track table from a csv or json file.
func Load(path string) ([]*Track, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("music: couldn't read input file: %w", err)
	}

	ext := filepath.Ext(path)
	var unmarshal func([]byte) ([]*Track, error)
	switch ext {
	case ".json":
		unmarshal = func(b []byte) ([]*Track, error) {
			var ts []*Track
			if err := json.Unmarshal(b, &ts); err != nil {
				return nil, fmt.Errorf("couldn't unmarshal tracks: %w", err)
			}
			return ts, nil
		}
	case ".csv":
		unmarshal = func(b []byte) ([]*Track, error) {
			var ts []*Track
			if err := gocsv.UnmarshalBytes(b, &ts); err != nil {
				return nil, fmt.Errorf("couldn't unmarshal tracks: %w", err)
			}
			return ts, nil
		}
	default:
		return nil, fmt.Errorf("music: unsupported input format: %s", ext)
	}
	tracks, err := unmarshal(b)
	if err != nil {
		return nil, fmt.Errorf("music: %w", err)
	}
	for _, t := range tracks {
		if t.Name == "" || t.Album == "" {
			return nil, fmt.Errorf("music: track without name or album: %+v", *t)
		}
		if t.Frequency <= 0 || t.Seconds <= 0 {
			return nil, fmt.Errorf("music: invalid frequency or duration for %s", t.Name)
		}
		t.Duration = time.Duration(t.Seconds * float64(time.Second))
	}
	return tracks, nil
}
