// SPDX-License-Identifier: EPL-2.0

package wavsift

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/wavsift/formats/wav"
	"github.com/ik5/wavsift/probe"
	"github.com/ik5/wavsift/scan"
)

// Options control a single filter run.
//
// Both duration bounds are inclusive and expressed in milliseconds. The
// zero value of MaxLength means "at most 0ms"; callers wanting no upper
// bound pass math.MaxInt64. A MinLength greater than MaxLength matches
// nothing — that is documented behavior, not an error.
type Options struct {
	// Input is the root directory scanned recursively.
	Input string
	// Output is the root that receives matching files, mirroring their
	// paths relative to Input. Created if absent.
	Output string
	// MinLength is the inclusive lower duration bound in milliseconds.
	MinLength int64
	// MaxLength is the inclusive upper duration bound in milliseconds.
	MaxLength int64
}

// DefaultRegistry returns a prober registry with the WAV prober bound
// under the key "wav". Registry keys are matched against file extensions
// verbatim, so only the lowercase extension is recognized.
func DefaultRegistry() *probe.Registry {
	reg := probe.NewRegistry()
	reg.Register("wav", wav.Prober{})
	return reg
}

// Filter scans opts.Input recursively, keeps every registered container
// file whose duration lies within [MinLength, MaxLength], and copies each
// kept file to the same path relative to opts.Output. It returns the
// number of files copied.
//
// The run is strictly sequential and fails fast: the first walk, probe, or
// copy error aborts the whole run and is returned. Files copied before the
// failure stay in place; there is no rollback and no way to resume.
func Filter(opts Options) (int, error) {
	return FilterWith(opts, DefaultRegistry())
}

// FilterWith is Filter with a caller-supplied prober registry.
func FilterWith(opts Options, reg *probe.Registry) (int, error) {
	fi, err := os.Stat(opts.Input)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, fmt.Errorf("%w: %s", ErrInputMissing, opts.Input)
	}
	if err != nil {
		return 0, fmt.Errorf("stat input directory %s: %w", opts.Input, err)
	}
	if !fi.IsDir() {
		return 0, fmt.Errorf("%w: %s", ErrInputNotDir, opts.Input)
	}

	if err := os.MkdirAll(opts.Output, 0o755); err != nil {
		return 0, fmt.Errorf("create output directory %s: %w", opts.Output, err)
	}

	copied := 0
	err = scan.Files(opts.Input, func(path string, info fs.FileInfo) error {
		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		prober, ok := reg.Get(ext)
		if !ok {
			// Not a registered container extension. Skipped files are
			// never opened, whatever their content.
			return nil
		}

		pi, err := probe.File(prober, path)
		if err != nil {
			return err
		}

		ms := pi.Duration().Milliseconds()
		if ms < opts.MinLength || ms > opts.MaxLength {
			return nil
		}

		rel, err := filepath.Rel(opts.Input, path)
		if err != nil {
			return fmt.Errorf("compute relative path for %s: %w", path, err)
		}

		if err := copyFile(path, filepath.Join(opts.Output, rel), info.Mode().Perm()); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, err
	}
	return copied, nil
}

// copyFile copies src to dst byte for byte, creating missing parent
// directories and overwriting any existing file at dst (last write wins).
// perm is applied to dst whether it was created or overwritten.
func copyFile(src, dst string, perm fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create parent directory for %s: %w", dst, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}

	// O_CREATE only honors perm for a file it creates. An overwritten dst
	// keeps its old mode, so the source bits are applied explicitly.
	if err := os.Chmod(dst, perm); err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return nil
}
