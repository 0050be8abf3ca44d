package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/wavelab/internal/beats"
	"github.com/san-kum/wavelab/internal/rings"
)

const (
	DefaultOutputDir    = "."
	DefaultHeatmapCells = 250
	DefaultPlotWidth    = 80
	DefaultPlotHeight   = 10
)

type Config struct {
	Beats  beats.Params `yaml:"beats"`
	Sweep  SweepConfig  `yaml:"sweep"`
	Rings  RingsConfig  `yaml:"rings"`
	Output OutputConfig `yaml:"output"`
}

type SweepConfig struct {
	Deltas         []float64   `yaml:"deltas"`
	AmplitudePairs [][]float64 `yaml:"amplitude_pairs"`
}

type RingsConfig struct {
	rings.Optics `yaml:",inline"`
	HalfExtent   float64 `yaml:"half_extent"`
	Resolution   int     `yaml:"resolution"`
}

type OutputConfig struct {
	Dir          string `yaml:"dir"`
	HTML         bool   `yaml:"html"`
	PNG          bool   `yaml:"png"`
	SVG          bool   `yaml:"svg"`
	Terminal     bool   `yaml:"terminal"`
	HeatmapCells int    `yaml:"heatmap_cells"`
	PlotWidth    int    `yaml:"plot_width"`
	PlotHeight   int    `yaml:"plot_height"`
}

func DefaultConfig() *Config {
	pairs := make([][]float64, len(beats.DefaultAmplitudeRatios))
	for i, p := range beats.DefaultAmplitudeRatios {
		pairs[i] = []float64{p[0], p[1]}
	}
	deltas := make([]float64, len(beats.DefaultDeltas))
	copy(deltas, beats.DefaultDeltas)

	return &Config{
		Beats: beats.DefaultParams(),
		Sweep: SweepConfig{
			Deltas:         deltas,
			AmplitudePairs: pairs,
		},
		Rings: RingsConfig{
			Optics:     rings.DefaultOptics(),
			HalfExtent: rings.DefaultHalfExtent,
			Resolution: rings.DefaultResolution,
		},
		Output: OutputConfig{
			Dir:          DefaultOutputDir,
			HTML:         true,
			PNG:          true,
			Terminal:     true,
			HeatmapCells: DefaultHeatmapCells,
			PlotWidth:    DefaultPlotWidth,
			PlotHeight:   DefaultPlotHeight,
		},
	}
}

// Load reads a YAML file over the defaults, so a file only needs the keys
// it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// AmplitudePairs returns the sweep pairs, skipping entries that do not have
// exactly two values.
func (c *Config) AmplitudePairs() [][2]float64 {
	pairs := make([][2]float64, 0, len(c.Sweep.AmplitudePairs))
	for _, p := range c.Sweep.AmplitudePairs {
		if len(p) != 2 {
			continue
		}
		pairs = append(pairs, [2]float64{p[0], p[1]})
	}
	return pairs
}
