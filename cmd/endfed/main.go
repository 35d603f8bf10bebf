// Command endfed charts the wire lengths that put a high-voltage node at the
// feed point of an end-fed antenna on the selected amateur bands.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/banshee-data/endfed/internal/cli"
	"github.com/banshee-data/endfed/internal/config"
	"github.com/banshee-data/endfed/internal/fsutil"
	"github.com/banshee-data/endfed/internal/monitoring"
	"github.com/banshee-data/endfed/internal/overlay"
	"github.com/banshee-data/endfed/internal/render"
	"github.com/banshee-data/endfed/internal/version"
)

const prog = "endfed"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, fsutil.OSFileSystem{}))
}

// run executes one invocation and returns the process exit status.
func run(args []string, stdout io.Writer, fsys fsutil.FileSystem) int {
	opts, err := cli.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		cli.Usage(stdout, prog)
		return 0
	}
	if err != nil {
		monitoring.Logf("%v", err)
		cli.Usage(stdout, prog)
		return 1
	}

	if opts.ShowVersion {
		fmt.Fprintln(stdout, version.String(prog))
		return 0
	}
	monitoring.SetVerbose(opts.Verbose)

	cfg := config.DefaultRenderConfig()
	if opts.ConfigPath != "" {
		cfg, err = config.LoadRenderConfig(fsys, opts.ConfigPath)
		if err != nil {
			monitoring.Logf("config: %v", err)
			return 1
		}
		monitoring.Debugf("loaded render config from %s", opts.ConfigPath)
	}

	r, err := render.ForFile(opts.Output, cfg)
	if err != nil {
		monitoring.Logf("%v", err)
		cli.Usage(stdout, prog)
		return 1
	}

	g, err := overlay.Aggregate(opts.Bands, opts.Fullwave)
	if err != nil {
		monitoring.Logf("%v", err)
		cli.Usage(stdout, prog)
		return 1
	}
	g = overlay.ToDisplayUnits(g, opts.Metric)
	monitoring.Debugf("%s: %d segments, axis [%.4f, %.4f] %s",
		g.Title, len(g.Segments), g.Baseline, g.MaxEdge, g.Unit)

	if err := render.WriteFile(fsys, opts.Output, r, render.FromGeometry(g)); err != nil {
		monitoring.Logf("%v", err)
		return 1
	}
	return 0
}
