package monitor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/gridcoord/internal/coordlist"
	"github.com/banshee-data/gridcoord/internal/fsutil"
)

func makeList(t *testing.T) *coordlist.CoordinateList {
	t.Helper()
	l, err := coordlist.New(coordlist.Coord{64, 32, 16}, 3)
	require.NoError(t, err)
	require.NoError(t, l.Set(coordlist.Coord{1, 2, 3}, 0))
	require.NoError(t, l.Set(coordlist.Coord{10, 20, 15}, 2))
	return l
}

func TestProject(t *testing.T) {
	l := makeList(t)

	p, err := Project(l, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, uint32(64), p.BoundX)
	assert.Equal(t, uint32(16), p.BoundY)
	assert.Equal(t, 1, p.Skipped)
	require.Len(t, p.Points, 2)
	assert.Equal(t, 1.0, p.Points[0].X)
	assert.Equal(t, 3.0, p.Points[0].Y)
	assert.Equal(t, 10.0, p.Points[1].X)
	assert.Equal(t, 15.0, p.Points[1].Y)
}

func TestProject_InvalidAxes(t *testing.T) {
	l := makeList(t)
	for _, axes := range [][2]int{{0, 0}, {-1, 1}, {0, 3}} {
		_, err := Project(l, axes[0], axes[1])
		assert.Error(t, err, "axes %v", axes)
	}
}

func TestWriteProjectionPNG(t *testing.T) {
	p, err := Project(makeList(t), 0, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteProjectionPNG(&buf, p, "test grid"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")), "output is not a PNG")
}

func TestWriteProjectionPNG_Empty(t *testing.T) {
	l, err := coordlist.New(coordlist.Coord{4, 4, 4}, 2)
	require.NoError(t, err)
	p, err := Project(l, 0, 1)
	require.NoError(t, err)
	assert.Empty(t, p.Points)

	var buf bytes.Buffer
	require.NoError(t, WriteProjectionPNG(&buf, p, "empty"))
	assert.NotZero(t, buf.Len())
}

func TestWriteProjectionHTML(t *testing.T) {
	p, err := Project(makeList(t), 1, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteProjectionHTML(&buf, p, "grid html"))
	out := buf.String()
	assert.True(t, strings.Contains(out, "grid html"))
	assert.True(t, strings.Contains(out, "points=2 skipped=1"))
}

func TestSaveProjection(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	p, err := Project(makeList(t), 0, 1)
	require.NoError(t, err)

	pngPath, htmlPath, err := SaveProjection(mfs, "plots/run1", p, "saved")
	require.NoError(t, err)
	assert.Equal(t, "plots/run1/projection.png", pngPath)
	assert.Equal(t, "plots/run1/projection.html", htmlPath)

	png, err := mfs.ReadFile(pngPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	html, err := mfs.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "saved")

	info, err := mfs.Stat("plots")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
