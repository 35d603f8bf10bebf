// Package cli turns command-line arguments into a band selection and output
// options. Parsing never exits the process; callers decide what to do with
// the returned error.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/banshee-data/endfed/internal/bands"
	"github.com/banshee-data/endfed/internal/overlay"
)

// DefaultOutput is the chart path used when -o is not given.
const DefaultOutput = "endfed.png"

var (
	// ErrInvalidToken is returned for a positional argument that is not an
	// unsigned integer.
	ErrInvalidToken = errors.New("invalid band token")

	// ErrEmptySelection is returned when no band was given.
	ErrEmptySelection = overlay.ErrEmptySelection
)

// Options is the parsed command line.
type Options struct {
	Bands    []bands.Band // command-line order, duplicates kept
	Fullwave bool
	Metric   bool

	Output      string
	ConfigPath  string
	Verbose     bool
	ShowVersion bool
}

func newFlagSet(o *Options) *flag.FlagSet {
	fs := flag.NewFlagSet("endfed", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&o.Fullwave, "f", false, "graph fullwave (halfwave default)")
	fs.BoolVar(&o.Metric, "m", false, "metric lengths")
	fs.StringVar(&o.Output, "o", DefaultOutput, "output file; extension selects the format")
	fs.StringVar(&o.ConfigPath, "config", "", "render settings file (.json or .jsonc)")
	fs.BoolVar(&o.Verbose, "v", false, "verbose logging to stderr")
	fs.BoolVar(&o.ShowVersion, "version", false, "print version and exit")
	return fs
}

// Parse reads flags and band designators from args, which excludes the
// program name. Flags may appear before, between or after bands.
//
// With -version set, an empty band list is not an error.
func Parse(args []string) (Options, error) {
	var o Options
	fs := newFlagSet(&o)

	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return Options{}, err
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}

		b, err := parseBand(rest[0])
		if err != nil {
			return Options{}, err
		}
		o.Bands = append(o.Bands, b)
		rest = rest[1:]
	}

	if len(o.Bands) == 0 && !o.ShowVersion {
		return Options{}, ErrEmptySelection
	}
	return o, nil
}

func parseBand(tok string) (bands.Band, error) {
	n, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidToken, tok)
	}
	b := bands.Band(n)
	if _, err := bands.Lookup(b); err != nil {
		return 0, err
	}
	return b, nil
}

// Usage writes the usage block for prog.
func Usage(w io.Writer, prog string) {
	fmt.Fprintf(w, "Usage: %s [-f] [-m] band...\n", prog)
	fmt.Fprintf(w, "  -f, graph fullwave (halfwave default).\n")
	fmt.Fprintf(w, "  -m, metric lengths.\n")
	fmt.Fprintf(w, "  band, integer in %s m\n", bands.ValidBandsString())
	fmt.Fprintf(w, "  E.g., %s 40 20 15 10\n", prog)
	fmt.Fprintf(w, "Other options:\n")
	fmt.Fprintf(w, "  -o FILE, output chart (default %s); .png .svg .pdf .jpg .tif .eps .html\n", DefaultOutput)
	fmt.Fprintf(w, "  -config FILE, render settings (.json or .jsonc).\n")
	fmt.Fprintf(w, "  -v, verbose logging.\n")
	fmt.Fprintf(w, "  -version, print version and exit.\n")
}
