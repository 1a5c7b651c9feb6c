// Command coordlist-check runs the reference coordinate-list sequence
// against a configured grid and exits with a status identifying the first
// rejected operation.
package main

import (
	"flag"
	"fmt"

	"github.com/banshee-data/gridcoord/internal/config"
	"github.com/banshee-data/gridcoord/internal/coordlist"
	"github.com/banshee-data/gridcoord/internal/fsutil"
	"github.com/banshee-data/gridcoord/internal/monitor"
	"github.com/banshee-data/gridcoord/internal/monitoring"
	"github.com/banshee-data/gridcoord/internal/version"
)

// probeValue is the per-axis coordinate written by the reference sequence.
const probeValue = 45

func main() {
	var configPath string
	var plotDir string
	var quiet bool
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "grid config file (.json, .yaml or .yml); defaults apply when empty")
	flag.StringVar(&plotDir, "plot-dir", "", "write projection.png and projection.html to this directory")
	flag.BoolVar(&quiet, "quiet", false, "suppress progress logging")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version.String())
		return
	}
	if quiet {
		monitoring.SetLogger(nil)
	}

	cfg := config.DefaultGridConfig()
	if configPath != "" {
		loaded, err := config.LoadGridConfig(configPath)
		if err != nil {
			monitoring.Fatalf(coordlist.ExitFailure, "load config: %v", err)
			return
		}
		cfg = loaded
	}

	if err := run(cfg, fsutil.OSFileSystem{}, plotDir); err != nil {
		monitoring.Fatalf(coordlist.ExitCode(err), "%v", err)
		return
	}
	fmt.Println("coordlist check passed")
}

// run creates a list from cfg, checks the sentinel pattern, writes the probe
// coordinate at the first, middle and last slots, appends it once more, and
// optionally renders a projection. List errors are returned as-is (or
// wrapped with %w) so ExitCode can classify them.
func run(cfg *config.GridConfig, fsys fsutil.FileSystem, plotDir string) error {
	dims := cfg.GetDims()
	n := cfg.GetInitialElements()

	l, err := coordlist.New(dims, n)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer l.Release()

	if l.Len() != n {
		return fmt.Errorf("create: count = %d, want %d", l.Len(), n)
	}
	for _, i := range edgeSlots(n) {
		raw, err := l.Raw(i)
		if err != nil {
			return err
		}
		if raw != dims {
			return fmt.Errorf("slot %d holds %s, want sentinel %s", i, raw, dims)
		}
	}

	probe := probeFor(dims)
	for _, i := range probeSlots(n) {
		if err := l.Set(probe, i); err != nil {
			return err
		}
		got, err := l.Get(i)
		if err != nil {
			return err
		}
		if got != probe {
			return fmt.Errorf("slot %d reads %s after set %s", i, got, probe)
		}
		monitoring.Logf("[check] set/get slot %d = %s", i, got)
	}

	if err := l.Append(probe); err != nil {
		return err
	}
	if l.Len() != n+1 {
		return fmt.Errorf("append: count = %d, want %d", l.Len(), n+1)
	}
	got, err := l.Get(n)
	if err != nil {
		return err
	}
	if got != probe {
		return fmt.Errorf("appended slot %d reads %s, want %s", n, got, probe)
	}
	monitoring.Logf("[check] appended slot %d = %s (count %d)", n, got, l.Len())

	s := coordlist.Summarize(l)
	monitoring.Logf("[check] summary: %d valid, %d invalid of %d slots", s.ValidCount, s.InvalidCount, s.Len)

	if plotDir != "" {
		x, y := cfg.GetPlotAxes()
		p, err := monitor.Project(l, x, y)
		if err != nil {
			return err
		}
		if _, _, err := monitor.SaveProjection(fsys, plotDir, p, fmt.Sprintf("coordinate list %s", dims)); err != nil {
			return err
		}
	}
	return nil
}

// probeFor clamps probeValue inside every axis bound.
func probeFor(dims coordlist.Coord) coordlist.Coord {
	var c coordlist.Coord
	for axis, bound := range dims {
		c[axis] = min(probeValue, bound-1)
	}
	return c
}

// edgeSlots returns the first and last slot indices of an n-slot list.
func edgeSlots(n int) []int {
	switch {
	case n == 0:
		return nil
	case n == 1:
		return []int{0}
	default:
		return []int{0, n - 1}
	}
}

// probeSlots returns the first, middle and last slot indices, deduplicated.
func probeSlots(n int) []int {
	if n == 0 {
		return nil
	}
	out := []int{0}
	for _, i := range []int{n / 2, n - 1} {
		if i != out[len(out)-1] {
			out = append(out, i)
		}
	}
	return out
}
