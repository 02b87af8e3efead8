// SPDX-License-Identifier: EPL-2.0

package probe

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Info describes a PCM container from its header metadata alone.
// It is computed per file and discarded after the caller's decision;
// nothing in this package holds on to it.
type Info struct {
	// SampleRate of the PCM stream in Hz.
	SampleRate int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels int
	// BitDepth in bits per sample (e.g., 16).
	BitDepth int
	// Samples is the total sample count declared by the container's data
	// chunk, interleaved across all channels: a stereo file declares two
	// samples per frame. The payload itself is never read.
	Samples int64
}

// Duration returns the playback time derived from Samples and SampleRate.
// The computation is exact integer math, so Duration().Milliseconds()
// truncates toward zero: 22050 samples at 44100 Hz is exactly 500ms.
// A zero-sample container has a duration of exactly 0.
func (i Info) Duration() time.Duration {
	if i.SampleRate < 1 {
		return 0
	}
	return time.Duration(i.Samples * int64(time.Second) / int64(i.SampleRate))
}

// Prober reads container metadata from r without decoding the payload.
type Prober interface {
	Probe(r io.ReadSeeker) (Info, error)
}

// File opens path, probes it with p, and closes the file before returning.
// A path that cannot be opened or parsed always yields an error, never a
// zero-valued Info.
func File(p Prober, path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := p.Probe(f)
	if err != nil {
		return Info{}, fmt.Errorf("probe %s: %w", path, err)
	}
	return info, nil
}

// Registry maps container extension keys (e.g. "wav") to probers.
// Keys are matched verbatim, so lookups are case-sensitive.
type Registry struct {
	probers map[string]Prober

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		probers: make(map[string]Prober),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(ext string, p Prober) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.probers[ext] = p
}

func (r *Registry) Get(ext string) (Prober, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p, ok := r.probers[ext]
	return p, ok
}
