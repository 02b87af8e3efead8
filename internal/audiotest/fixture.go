// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides shared helpers for generating real WAV
// fixtures in tests.
package audiotest

import (
	"fmt"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// WriteWAVFile writes a silent 16-bit PCM WAV file at path with the given
// sample rate, channel count, and number of per-channel frames. Missing
// parent directories are created.
func WriteWAVFile(path string, sampleRate, channels, frames int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create fixture directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create fixture %s: %w", path, err)
	}

	enc := gowav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, frames*channels),
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalize fixture %s: %w", path, err)
	}
	return f.Close()
}
