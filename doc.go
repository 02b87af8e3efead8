// SPDX-License-Identifier: EPL-2.0

// Package wavsift filters WAV files by playback duration.
//
// It scans a directory tree recursively, reads each WAV file's duration
// from header metadata alone, and copies files whose duration falls within
// an inclusive millisecond range into a mirrored tree under an output
// root.
//
// # Quick Start
//
// The simplest way to run a filter pass is Filter:
//
//	copied, err := wavsift.Filter(wavsift.Options{
//	    Input:     "recordings",
//	    Output:    "keepers",
//	    MinLength: 500,
//	    MaxLength: 5000,
//	})
//
//	// copied is the number of files written under "keepers"
//
// # Behavior
//
// Only files whose extension matches a registered container key are
// considered; the default registry recognizes exactly "wav", matched
// case-sensitively. Everything else is skipped without being opened.
// Matching files keep their path relative to the input root, so
// recordings/a/b/c.wav lands at keepers/a/b/c.wav with intermediate
// directories created as needed. An existing file at the destination is
// overwritten without warning.
//
// Duration comes from the container header only, sample rate and declared
// sample count, computed with exact integer math and truncated toward zero
// to milliseconds. The count is interleaved across channels. The audio
// payload is never decoded.
//
// # Failure Model
//
// The pipeline is single-threaded and fails fast. Any error — an
// unreadable directory, a malformed WAV header, a failed copy — aborts the
// entire run; nothing is retried, skipped, or downgraded to a warning.
// Files copied before the failure stay in place.
//
// # Subpackages
//
//   - formats/wav probes WAV headers via github.com/go-audio
//   - probe defines the format-agnostic metadata model and registry
//   - scan walks directory trees without following symbolic links
//
// The cmd/wavsift command wraps Filter in a small CLI.
package wavsift
