package synth

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	bitDepth  = 16
	pcmFormat = 1
)

// Metadata is stored in the INFO chunk of the written file.
type Metadata struct {
	Title  string
	Artist string
	Album  string
	Track  int
	Genre  string
}

// WriteWAV writes mono 16-bit PCM samples to path.
func WriteWAV(path string, samples []int16, meta *Metadata) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("synth: couldn't create file: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, SampleRate, bitDepth, 1, pcmFormat)
	if meta != nil {
		enc.Metadata = &wav.Metadata{
			Title:   meta.Title,
			Artist:  meta.Artist,
			Product: meta.Album,
			Genre:   meta.Genre,
		}
		if meta.Track > 0 {
			enc.Metadata.TrackNbr = fmt.Sprintf("%d", meta.Track)
		}
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("synth: couldn't write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("synth: couldn't close encoder: %w", err)
	}
	return nil
}

// PCM is a decoded 16-bit audio stream.
type PCM struct {
	Channels   int
	SampleRate int
	// Samples are interleaved when there is more than one channel.
	Samples []int16
}

// ReadWAV decodes a 16-bit PCM file.
func ReadWAV(path string) (*PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("synth: couldn't open file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("synth: invalid wav file %s", path)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("synth: couldn't decode wav: %w", err)
	}
	if dec.BitDepth != bitDepth {
		return nil, fmt.Errorf("synth: unsupported bit depth %d", dec.BitDepth)
	}
	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}
	return &PCM{
		Channels:   int(dec.NumChans),
		SampleRate: int(dec.SampleRate),
		Samples:    samples,
	}, nil
}
