package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/banshee-data/gridcoord/internal/coordlist"
	"github.com/banshee-data/gridcoord/internal/fsutil"
)

// DefaultConfigPath is the path to the canonical grid defaults file.
const DefaultConfigPath = "config/grid.defaults.json"

// maxFileSize bounds config files read from disk.
const maxFileSize = 1 * 1024 * 1024 // 1MB

// GridConfig describes the grid a coordinate list is allocated for and how
// the driver renders it. Every field is optional; the Get* methods fall
// back to defaults for fields left unset.
type GridConfig struct {
	Dims            []uint32 `json:"dims,omitempty" yaml:"dims,omitempty"`
	InitialElements *int     `json:"initial_elements,omitempty" yaml:"initial_elements,omitempty"`
	PlotAxes        []int    `json:"plot_axes,omitempty" yaml:"plot_axes,omitempty"`
}

// Defaults
var (
	defaultDims     = coordlist.Coord{2048, 2048, 2048}
	defaultPlotAxes = [2]int{0, 1}
)

func ptrInt(v int) *int { return &v }

// EmptyGridConfig returns a GridConfig with all fields unset.
func EmptyGridConfig() *GridConfig {
	return &GridConfig{}
}

// DefaultGridConfig returns a GridConfig with every field populated from
// the built-in defaults.
func DefaultGridConfig() *GridConfig {
	return &GridConfig{
		Dims:            append([]uint32(nil), defaultDims[:]...),
		InitialElements: ptrInt(0),
		PlotAxes:        append([]int(nil), defaultPlotAxes[:]...),
	}
}

// LoadGridConfig loads a GridConfig from a .json, .yaml or .yml file on disk.
func LoadGridConfig(path string) (*GridConfig, error) {
	return LoadGridConfigFS(fsutil.OSFileSystem{}, path)
}

// LoadGridConfigFS loads a GridConfig through fsys. The format follows the
// file extension. Fields omitted from the file keep their defaults, so
// partial configs are safe.
func LoadGridConfigFS(fsys fsutil.FileSystem, path string) (*GridConfig, error) {
	cleanPath := filepath.Clean(path)
	ext := filepath.Ext(cleanPath)
	if ext != ".json" && ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .json, .yaml or .yml extension, got %q", ext)
	}

	fileInfo, err := fsys.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := fsys.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyGridConfig()
	if ext == ".json" {
		err = json.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", ext, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical grid defaults from DefaultConfigPath.
// It searches the current directory and common parent directories.
// Panics if the file cannot be loaded, intended for test setup.
func MustLoadDefaultConfig() *GridConfig {
	candidates := []string{
		DefaultConfigPath,
		"../../" + DefaultConfigPath,    // from internal/config/
		"../../../" + DefaultConfigPath, // from cmd/<tool>/ or deeper internal packages
	}
	for _, path := range candidates {
		if cfg, err := LoadGridConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that the configuration values are valid.
func (c *GridConfig) Validate() error {
	if c.Dims != nil {
		if len(c.Dims) != coordlist.Dims {
			return fmt.Errorf("dims must have %d entries, got %d", coordlist.Dims, len(c.Dims))
		}
		for axis, bound := range c.Dims {
			if bound == 0 {
				return fmt.Errorf("dims[%d] must be positive", axis)
			}
		}
	}

	if c.InitialElements != nil {
		n := *c.InitialElements
		if n < 0 || uint64(n) >= coordlist.MaxElements {
			return fmt.Errorf("initial_elements must be in [0, %d), got %d", uint64(coordlist.MaxElements), n)
		}
	}

	if c.PlotAxes != nil {
		if len(c.PlotAxes) != 2 {
			return fmt.Errorf("plot_axes must name exactly 2 axes, got %d", len(c.PlotAxes))
		}
		for _, axis := range c.PlotAxes {
			if axis < 0 || axis >= coordlist.Dims {
				return fmt.Errorf("plot_axes entry %d out of range [0, %d)", axis, coordlist.Dims)
			}
		}
		if c.PlotAxes[0] == c.PlotAxes[1] {
			return fmt.Errorf("plot_axes must be distinct, got %d twice", c.PlotAxes[0])
		}
	}

	return nil
}

// GetDims returns the configured axis bounds or the default.
func (c *GridConfig) GetDims() coordlist.Coord {
	if len(c.Dims) != coordlist.Dims {
		return defaultDims
	}
	var dims coordlist.Coord
	copy(dims[:], c.Dims)
	return dims
}

// GetInitialElements returns the initial_elements value or the default.
func (c *GridConfig) GetInitialElements() int {
	if c.InitialElements == nil {
		return 0
	}
	return *c.InitialElements
}

// GetPlotAxes returns the two axes used for projection plots.
func (c *GridConfig) GetPlotAxes() (x, y int) {
	if len(c.PlotAxes) != 2 {
		return defaultPlotAxes[0], defaultPlotAxes[1]
	}
	return c.PlotAxes[0], c.PlotAxes[1]
}
