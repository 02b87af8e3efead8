// SPDX-License-Identifier: EPL-2.0

// Command wavsift recursively scans a directory for WAV files, keeps the
// ones whose duration falls within an inclusive millisecond range, and
// copies them into a mirrored tree under an output directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/ik5/wavsift"
)

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		// parseFlags already reported the problem and usage.
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	copied, err := wavsift.Filter(opts)
	if err != nil {
		logger.Error("run aborted", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Filtered and copied %d WAV files to %s\n", copied, opts.Output)
}

// parseFlags parses args into Options. Every flag is registered under both
// its long and short name, so -i and --input are interchangeable. Any parse
// or validation failure is written to w exactly once, here; callers only
// inspect the returned error.
func parseFlags(args []string, w io.Writer) (wavsift.Options, error) {
	fs := flag.NewFlagSet("wavsift", flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { printUsage(fs) }

	opts := wavsift.Options{}

	fs.StringVar(&opts.Input, "input", "", "Input directory scanned recursively for WAV files")
	fs.StringVar(&opts.Input, "i", "", "Same as --input")
	fs.StringVar(&opts.Output, "output", "", "Output directory for matching files (created if absent)")
	fs.StringVar(&opts.Output, "o", "", "Same as --output")
	fs.Int64Var(&opts.MinLength, "min-length", 0, "Inclusive minimum duration in milliseconds")
	fs.Int64Var(&opts.MinLength, "m", 0, "Same as --min-length")
	fs.Int64Var(&opts.MaxLength, "max-length", math.MaxInt64, "Inclusive maximum duration in milliseconds")
	fs.Int64Var(&opts.MaxLength, "M", math.MaxInt64, "Same as --max-length")

	if err := fs.Parse(args); err != nil {
		return wavsift.Options{}, err
	}

	if opts.Input == "" {
		return wavsift.Options{}, usageError(fs, "missing required flag --input")
	}
	if opts.Output == "" {
		return wavsift.Options{}, usageError(fs, "missing required flag --output")
	}
	return opts, nil
}

// usageError reports msg and the usage block to the flag set's output,
// matching what the FlagSet itself does for flags it rejects.
func usageError(fs *flag.FlagSet, msg string) error {
	fmt.Fprintf(fs.Output(), "wavsift: %s\n", msg)
	fs.Usage()
	return errors.New(msg)
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprint(fs.Output(), `Usage:
  wavsift --input DIR --output DIR [--min-length MS] [--max-length MS]

Scans the input directory recursively for .wav files, computes each file's
duration from its header, and copies files whose duration lies within the
inclusive [min, max] range into the output directory, preserving relative
paths. Any error aborts the whole run.

Flags:
  -i, --input       Input directory scanned recursively (required)
  -o, --output      Output directory, created if absent (required)
  -m, --min-length  Inclusive minimum duration in milliseconds (default 0)
  -M, --max-length  Inclusive maximum duration in milliseconds (default unbounded)
  -h, --help        Show this help
`)
}
