// SPDX-License-Identifier: EPL-2.0

// Package wav provides header-only probing of WAV audio files.
//
// This package reads the RIFF/WAVE fmt chunk and the declared size of the
// data chunk. It uses the github.com/go-audio library for robust chunk
// scanning. The sample payload is never decoded.
//
// # Supported Formats
//
// Currently supported:
//   - PCM (format tag 1), any bit depth that is a whole number of bytes
//   - IEEE float (format tag 3)
//   - Mono and multi-channel
//   - Any sample rate
//
// Compressed format tags are rejected with ErrCompressedFormat.
//
// # Probing WAV Files
//
// Use the Prober to read header metadata:
//
//	prober := wav.Prober{}
//	file, _ := os.Open("audio.wav")
//	info, err := prober.Probe(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	fmt.Println(info.SampleRate, info.Channels, info.Duration())
//
// The returned probe.Info carries the sample rate, channel count, bit
// depth, and total sample count declared by the header. The count is
// interleaved across channels, so a stereo file declares two samples per
// frame and its Duration reflects that. Duration is derived from those
// values with exact integer math.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: The input is not a valid RIFF/WAVE file
//   - ErrCompressedFormat: The format tag is not uncompressed PCM or float
//   - ErrMalformedHeader: The fmt chunk carries impossible values
//
// Example:
//
//	info, err := prober.Probe(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
