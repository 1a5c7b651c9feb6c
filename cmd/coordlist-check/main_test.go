package main

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/gridcoord/internal/config"
	"github.com/banshee-data/gridcoord/internal/coordlist"
	"github.com/banshee-data/gridcoord/internal/fsutil"
	"github.com/banshee-data/gridcoord/internal/testutil"
)

func TestRun_ReferenceGrid(t *testing.T) {
	path := testutil.WriteTempFile(t, "grid.json", `{"dims":[2048,2048,2048],"initial_elements":30}`)
	cfg, err := config.LoadGridConfig(path)
	testutil.AssertNoError(t, err)

	mfs := fsutil.NewMemoryFileSystem()
	testutil.AssertNoError(t, run(cfg, mfs, ""))
	_, err = mfs.Stat("projection.png")
	testutil.AssertError(t, err)
}

func TestRun_DefaultsFile(t *testing.T) {
	cfg := config.MustLoadDefaultConfig()
	testutil.AssertNoError(t, run(cfg, fsutil.NewMemoryFileSystem(), ""))
}

func TestRun_WritesPlots(t *testing.T) {
	cfg := &config.GridConfig{
		Dims:     []uint32{32, 32, 8},
		PlotAxes: []int{0, 2},
	}
	n := 5
	cfg.InitialElements = &n

	mfs := fsutil.NewMemoryFileSystem()
	require.NoError(t, run(cfg, mfs, "out"))

	png, err := mfs.ReadFile("out/projection.png")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
	html, err := mfs.ReadFile("out/projection.html")
	require.NoError(t, err)
	assert.Contains(t, string(html), "[32,32,8]")
}

func TestRun_SmallAndEmptyLists(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		n := n
		cfg := &config.GridConfig{Dims: []uint32{1, 2, 100}, InitialElements: &n}
		assert.NoError(t, run(cfg, fsutil.NewMemoryFileSystem(), ""), "n=%d", n)
	}
}

func TestRun_InvalidDimsExitCode(t *testing.T) {
	cfg := &config.GridConfig{Dims: []uint32{0, 4, 4}}
	err := run(cfg, fsutil.NewMemoryFileSystem(), "")
	require.ErrorIs(t, err, coordlist.ErrInvalidDims)
	testutil.AssertExitCode(t, err, coordlist.ExitPrecondition)
}

func TestProbeFor(t *testing.T) {
	assert.Equal(t, coordlist.Coord{45, 45, 45}, probeFor(coordlist.Coord{2048, 2048, 2048}))
	assert.Equal(t, coordlist.Coord{0, 9, 45}, probeFor(coordlist.Coord{1, 10, 46}))
}

func TestSlotSelection(t *testing.T) {
	tests := []struct {
		n     int
		edges []int
		probe []int
	}{
		{0, nil, nil},
		{1, []int{0}, []int{0}},
		{2, []int{0, 1}, []int{0, 1}},
		{30, []int{0, 29}, []int{0, 15, 29}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.edges, edgeSlots(tt.n)); diff != "" {
			t.Errorf("edgeSlots(%d) mismatch (-want +got):\n%s", tt.n, diff)
		}
		if diff := cmp.Diff(tt.probe, probeSlots(tt.n)); diff != "" {
			t.Errorf("probeSlots(%d) mismatch (-want +got):\n%s", tt.n, diff)
		}
	}
}
