package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gospan/internal/bridge"
	"github.com/alexiusacademia/gospan/internal/nscp"
	"github.com/alexiusacademia/gospan/internal/section"
)

// Defaults applied when a configuration leaves a value unset. Setting
// Combination to GoverningCombo selects the gravity combination with the
// largest factored line load.
const (
	DefaultSubdivisions = 1
	DefaultCombination  = "S"
	GoverningCombo      = "governing"
)

// ErrInvalidConfig indicates a configuration that cannot describe a bridge.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the YAML/TOML description of a bridge analysis.
type Config struct {
	Name        string         `yaml:"name" toml:"name"`
	Spans       []float64      `yaml:"spans" toml:"spans"`
	Material    MaterialConfig `yaml:"material" toml:"material"`
	Section     SectionConfig  `yaml:"section" toml:"section"`
	Loads       LoadConfig     `yaml:"loads" toml:"loads"`
	Supports    []string       `yaml:"supports,omitempty" toml:"supports,omitempty"`
	Mesh        MeshConfig     `yaml:"mesh" toml:"mesh"`
	Combination string         `yaml:"combination" toml:"combination"`
	Output      OutputConfig   `yaml:"output" toml:"output"`
}

// MaterialConfig selects the girder material and its elastic modulus.
type MaterialConfig struct {
	Type    string  `yaml:"type" toml:"type"`                           // "concrete" or "steel"
	Modulus float64 `yaml:"modulus,omitempty" toml:"modulus,omitempty"` // Pa, overrides fc
	Fc      float64 `yaml:"fc,omitempty" toml:"fc,omitempty"`           // MPa
}

// SectionConfig gives the girder section explicitly, as a rectangle or as
// a polygon file.
type SectionConfig struct {
	Area    float64 `yaml:"area,omitempty" toml:"area,omitempty"`       // m²
	Inertia float64 `yaml:"inertia,omitempty" toml:"inertia,omitempty"` // m⁴
	Width   float64 `yaml:"width,omitempty" toml:"width,omitempty"`     // m, rectangular
	Height  float64 `yaml:"height,omitempty" toml:"height,omitempty"`   // m, rectangular
	File    string  `yaml:"file,omitempty" toml:"file,omitempty"`       // polygon section in mm
}

// LoadConfig holds the unfactored line loads and vehicle point loads.
type LoadConfig struct {
	Dead       float64           `yaml:"dead" toml:"dead"` // N/m
	Live       float64           `yaml:"live" toml:"live"` // N/m
	SelfWeight bool              `yaml:"self_weight,omitempty" toml:"self_weight,omitempty"`
	PointLoads []PointLoadConfig `yaml:"point_loads,omitempty" toml:"point_loads,omitempty"`
}

// PointLoadConfig is a concentrated live load.
type PointLoadConfig struct {
	Position float64 `yaml:"position" toml:"position"` // m from left end
	Force    float64 `yaml:"force" toml:"force"`       // N, downward
}

// MeshConfig controls the element subdivision of each span.
type MeshConfig struct {
	Subdivisions int `yaml:"subdivisions" toml:"subdivisions"`
}

// OutputConfig selects the diagrams produced by an analysis.
type OutputConfig struct {
	Plot  string `yaml:"plot,omitempty" toml:"plot,omitempty"`
	ASCII bool   `yaml:"ascii" toml:"ascii"`
}

// DefaultConfig describes the 20 m + 25 m + 20 m C50 concrete bridge.
func DefaultConfig() *Config {
	p := bridge.DefaultParameters()
	cfg := &Config{
		Name:     "three-span continuous girder",
		Spans:    append([]float64(nil), p.Spans...),
		Material: MaterialConfig{Type: "concrete", Modulus: p.E},
		Section:  SectionConfig{Area: p.A, Inertia: p.I},
		Loads: LoadConfig{
			Dead: p.DeadLoad,
			Live: p.LiveLoad,
		},
		Mesh:        MeshConfig{Subdivisions: DefaultSubdivisions},
		Combination: DefaultCombination,
		Output:      OutputConfig{ASCII: true},
	}
	for _, pl := range p.PointLoads {
		cfg.Loads.PointLoads = append(cfg.Loads.PointLoads, PointLoadConfig{Position: pl.Position, Force: pl.Force})
	}
	return cfg
}

// Load reads a YAML or TOML configuration, chosen by file extension.
// Missing values keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	// Geometry, girder and point loads replace the defaults as a whole.
	cfg.Spans = nil
	cfg.Material = MaterialConfig{Type: "concrete"}
	cfg.Section = SectionConfig{}
	cfg.Loads.PointLoads = nil

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrInvalidConfig, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.Section.File != "" && !filepath.IsAbs(cfg.Section.File) {
		cfg.Section.File = filepath.Join(filepath.Dir(path), cfg.Section.File)
	}
	return cfg, nil
}

// Save writes the configuration as YAML or TOML, chosen by file extension.
func (c *Config) Save(path string) error {
	var data []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	case ".toml":
		var sb strings.Builder
		err = toml.NewEncoder(&sb).Encode(c)
		data = []byte(sb.String())
	default:
		return fmt.Errorf("%w: unsupported extension %q", ErrInvalidConfig, ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks values that the bridge builder cannot check on its own.
func (c *Config) Validate() error {
	if len(c.Spans) == 0 {
		return fmt.Errorf("%w: no spans", ErrInvalidConfig)
	}
	switch c.Material.Type {
	case "", "concrete", "steel":
	default:
		return fmt.Errorf("%w: unknown material %q", ErrInvalidConfig, c.Material.Type)
	}
	if c.Mesh.Subdivisions < 0 {
		return fmt.Errorf("%w: subdivisions must not be negative", ErrInvalidConfig)
	}
	if c.Combination != GoverningCombo {
		if _, err := nscp.FindCombination(c.Combination); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Modulus resolves the elastic modulus in Pa.
func (c *Config) Modulus() float64 {
	if c.Material.Modulus > 0 {
		return c.Material.Modulus
	}
	if c.Material.Type == "steel" {
		return nscp.Es * 1e6
	}
	return nscp.ConcreteModulus(c.Material.Fc) * 1e6
}

// SectionProperties resolves area (m²) and inertia (m⁴). A section file
// takes precedence over width/height, which take precedence over explicit
// values.
func (c *Config) SectionProperties() (area, inertia float64, err error) {
	switch {
	case c.Section.File != "":
		s, err := section.LoadFromFile(c.Section.File)
		if err != nil {
			return 0, 0, err
		}
		props := s.CalculateProperties()
		return props.AreaSI(), props.InertiaSI(), nil
	case c.Section.Width > 0 && c.Section.Height > 0:
		props := section.Rectangle("rect", c.Section.Width*1000, c.Section.Height*1000).CalculateProperties()
		return props.AreaSI(), props.InertiaSI(), nil
	}
	return c.Section.Area, c.Section.Inertia, nil
}

// Parameters converts the configuration into bridge parameters.
func (c *Config) Parameters() (bridge.Parameters, error) {
	if err := c.Validate(); err != nil {
		return bridge.Parameters{}, err
	}
	area, inertia, err := c.SectionProperties()
	if err != nil {
		return bridge.Parameters{}, err
	}

	p := bridge.Parameters{
		Spans:        append([]float64(nil), c.Spans...),
		E:            c.Modulus(),
		A:            area,
		I:            inertia,
		DeadLoad:     c.Loads.Dead,
		LiveLoad:     c.Loads.Live,
		Supports:     append([]string(nil), c.Supports...),
		Subdivisions: c.Mesh.Subdivisions,
	}
	if c.Loads.SelfWeight {
		gamma := nscp.GammaConcrete
		if c.Material.Type == "steel" {
			gamma = nscp.GammaSteel
		}
		p.DeadLoad += nscp.SelfWeight(area, gamma)
	}
	for _, pl := range c.Loads.PointLoads {
		p.PointLoads = append(p.PointLoads, bridge.PointLoad{Position: pl.Position, Force: pl.Force})
	}
	return p, p.Validate()
}

// LoadCombination resolves the configured combination for p.
func (c *Config) LoadCombination(p bridge.Parameters) (nscp.LoadCombination, error) {
	if c.Combination == GoverningCombo {
		return bridge.GoverningCombination(p), nil
	}
	return nscp.FindCombination(c.Combination)
}
