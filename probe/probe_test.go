// SPDX-License-Identifier: EPL-2.0

package probe

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInfo_Duration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		samples    int64
		wantMS     int64
	}{
		{"1 second at 44.1kHz", 44100, 44100, 1000},
		{"500ms at 44.1kHz", 44100, 22050, 500},
		{"zero samples", 44100, 0, 0},
		{"truncates toward zero", 44100, 44099, 999},
		{"just under a millisecond", 44100, 44, 0},
		{"8kHz telephony", 8000, 12000, 1500},
		{"odd rate truncation", 3, 1, 333},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := Info{SampleRate: tt.sampleRate, Channels: 1, BitDepth: 16, Samples: tt.samples}
			got := info.Duration().Milliseconds()

			if got != tt.wantMS {
				t.Errorf("Duration() = %dms, want %dms", got, tt.wantMS)
			}
		})
	}
}

func TestInfo_Duration_ExactBoundaries(t *testing.T) {
	t.Parallel()

	// 22050 samples at 44100 Hz must be exactly 500ms, not 499 or 501.
	info := Info{SampleRate: 44100, Samples: 22050}
	if d := info.Duration(); d != 500*time.Millisecond {
		t.Errorf("Duration() = %v, want exactly 500ms", d)
	}

	info = Info{SampleRate: 44100, Samples: 44100}
	if d := info.Duration(); d != time.Second {
		t.Errorf("Duration() = %v, want exactly 1s", d)
	}
}

func TestInfo_Duration_InvalidRate(t *testing.T) {
	t.Parallel()

	info := Info{SampleRate: 0, Samples: 44100}
	if d := info.Duration(); d != 0 {
		t.Errorf("Duration() with zero sample rate = %v, want 0", d)
	}
}

type stubProber struct {
	info Info
	err  error
}

func (s stubProber) Probe(_ io.ReadSeeker) (Info, error) {
	return s.info, s.err
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	want := stubProber{info: Info{SampleRate: 8000}}
	reg.Register("wav", want)

	got, ok := reg.Get("wav")
	if !ok {
		t.Fatal("Get(\"wav\") not found after Register")
	}
	if got != want {
		t.Errorf("Get(\"wav\") = %v, want %v", got, want)
	}
}

func TestRegistry_Miss(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", stubProber{})

	if _, ok := reg.Get("mp3"); ok {
		t.Error("Get(\"mp3\") found, want miss")
	}
}

func TestRegistry_CaseSensitive(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", stubProber{})

	if _, ok := reg.Get("WAV"); ok {
		t.Error("Get(\"WAV\") found, want miss: keys are case-sensitive")
	}
	if _, ok := reg.Get("Wav"); ok {
		t.Error("Get(\"Wav\") found, want miss: keys are case-sensitive")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	first := stubProber{info: Info{SampleRate: 8000}}
	second := stubProber{info: Info{SampleRate: 44100}}

	reg.Register("wav", first)
	reg.Register("wav", second)

	got, ok := reg.Get("wav")
	if !ok {
		t.Fatal("Get(\"wav\") not found")
	}
	if got != second {
		t.Errorf("Get(\"wav\") = %v, want the later registration %v", got, second)
	}
}

func TestFile_NonexistentPath(t *testing.T) {
	t.Parallel()

	_, err := File(stubProber{}, "no/such/file.wav")
	if err == nil {
		t.Fatal("File() error = nil, want error for nonexistent path")
	}
}

func TestFile_ProberErrorIsWrapped(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("boom")
	path := filepath.Join(t.TempDir(), "x.wav")
	if err := writeEmptyFile(path); err != nil {
		t.Fatal(err)
	}

	_, err := File(stubProber{err: sentinel}, path)
	if !errors.Is(err, sentinel) {
		t.Errorf("File() error = %v, want wrapped %v", err, sentinel)
	}
}

func writeEmptyFile(path string) error {
	return os.WriteFile(path, nil, 0o644)
}
