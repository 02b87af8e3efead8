package wav

import "errors"

var (
	ErrNotWavFile       = errors.New("not a WAV file")
	ErrCompressedFormat = errors.New("compressed WAV format not supported")
	ErrMalformedHeader  = errors.New("malformed WAV header")
)
