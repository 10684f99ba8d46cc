package sonify

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Recorder accumulates synthesised samples for a WAV export.
type Recorder struct {
	samples []int16
}

func (r *Recorder) Append(samples []int16) {
	r.samples = append(r.samples, samples...)
}

// Samples returns what has been recorded so far.
func (r *Recorder) Samples() []int16 { return r.samples }

// RecordingPath returns dir/cord-<frame>.wav, creating dir if needed. It
// refuses to overwrite an existing file.
func RecordingPath(dir string, frame int) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create recording directory: %w", err)
		}
	}
	path := filepath.Join(dir, fmt.Sprintf("cord-%06d.wav", frame))
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("file %q already exists", path)
	}
	return path, nil
}

// WriteWAV writes 16-bit mono PCM to a new file at path.
func WriteWAV(path string, samples []int16) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(v)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: SampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	enc := wav.NewEncoder(f, SampleRate, 16, 1, 1)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finish wav: %w", err)
	}
	return nil
}
