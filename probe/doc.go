// SPDX-License-Identifier: EPL-2.0

// Package probe defines the header-only metadata model shared by all
// container formats.
//
// A Prober reads a container's declared sample rate, channel count, bit
// depth, and sample count from its header without ever decoding the sample
// payload. The Registry dispatches probers by file extension; keys are
// matched verbatim, so "wav" and "WAV" are different keys.
//
//	reg := probe.NewRegistry()
//	reg.Register("wav", wav.Prober{})
//
//	p, ok := reg.Get("wav")
//	info, err := probe.File(p, "audio.wav")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(info.Duration())
package probe
