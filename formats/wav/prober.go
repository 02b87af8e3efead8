// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/wavsift/probe"
)

// Format tags from the fmt chunk. Anything else is a compressed container.
const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

// Prober reads WAV header metadata. It implements probe.Prober.
type Prober struct{}

// Probe parses the RIFF/WAVE header of r and returns the declared format
// and sample count. The sample payload is never decoded: the sample count is
// derived from the size field of the data chunk, so probing a file costs a
// handful of header reads regardless of its length.
func (Prober) Probe(r io.ReadSeeker) (probe.Info, error) {
	d := gowav.NewDecoder(r)

	d.ReadInfo()
	if err := d.Err(); err != nil {
		return probe.Info{}, fmt.Errorf("%w: %v", ErrNotWavFile, err)
	}

	if d.WavAudioFormat != formatPCM && d.WavAudioFormat != formatIEEEFloat {
		return probe.Info{}, ErrCompressedFormat
	}
	if d.NumChans < 1 || d.SampleRate < 1 || d.BitDepth < 8 || d.BitDepth%8 != 0 {
		return probe.Info{}, ErrMalformedHeader
	}

	// Seek the chunk scanner to the data chunk so its declared size is
	// known. Chunks in between (LIST, INFO, ...) are drained, not parsed.
	if err := d.FwdToPCM(); err != nil {
		return probe.Info{}, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}

	// Samples counts every channel: the declared data-chunk byte length
	// divided by the size of one sample, not of one frame.
	sampleSize := int64(d.BitDepth / 8)
	return probe.Info{
		SampleRate: int(d.SampleRate),
		Channels:   int(d.NumChans),
		BitDepth:   int(d.BitDepth),
		Samples:    d.PCMLen() / sampleSize,
	}, nil
}
