// Package config loads the starfield settings: embedded defaults, then an
// optional YAML file, then environment overrides (a .env file is honored).
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"starfield/internal/assets"
	"starfield/internal/scene"
)

// Environment overrides.
const (
	EnvConfig = "STARFIELD_CONFIG"
	EnvStars  = "STARFIELD_STARS"
	EnvComets = "STARFIELD_COMETS"
	EnvSeed   = "STARFIELD_SEED"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window     Window     `yaml:"window"`
	Stars      Stars      `yaml:"stars"`
	Comets     Comets     `yaml:"comets"`
	Background Background `yaml:"background"`
	Page       Page       `yaml:"page"`
	Seed       uint64     `yaml:"seed"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

type Stars struct {
	Count int    `yaml:"count"`
	Color string `yaml:"color"`
}

type Comets struct {
	Count   int      `yaml:"count"`
	Palette []string `yaml:"palette"`
}

type Background struct {
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
}

// Page describes the virtual page the scroll-to-top control tracks.
type Page struct {
	Height  float64  `yaml:"height"`
	StatsAt float64  `yaml:"stats_at"`
	Stats   []string `yaml:"stats"`
}

// Default returns the embedded defaults.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(assets.DefaultConfig(), cfg); err != nil {
		return nil, fmt.Errorf("parse embedded config: %w", err)
	}
	return cfg, nil
}

// Load layers the YAML file at path (optional) and the environment over
// the defaults, then validates the result. An empty path falls back to
// STARFIELD_CONFIG.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvStars); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvStars, v, err)
		}
		c.Stars.Count = n
	}
	if v := os.Getenv(EnvComets); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvComets, v, err)
		}
		c.Comets.Count = n
	}
	if v := os.Getenv(EnvSeed); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvSeed, v, err)
		}
		c.Seed = n
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Stars.Count <= 0 {
		return fmt.Errorf("%w: stars.count must be positive", ErrInvalid)
	}
	if c.Comets.Count <= 0 {
		return fmt.Errorf("%w: comets.count must be positive", ErrInvalid)
	}
	if len(c.Comets.Palette) == 0 {
		return fmt.Errorf("%w: comets.palette is empty", ErrInvalid)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("%w: window.tps must be positive", ErrInvalid)
	}

	hexes := append([]string{c.Stars.Color, c.Background.Top, c.Background.Bottom}, c.Comets.Palette...)
	for _, h := range hexes {
		if _, err := ParseColor(h); err != nil {
			return err
		}
	}
	return nil
}

// Scene converts the config into scene options. Call after Validate.
func (c *Config) Scene() scene.Options {
	opts := scene.Options{
		StarCount:  c.Stars.Count,
		CometCount: c.Comets.Count,
		StarColor:  mustColor(c.Stars.Color),
		Top:        mustColor(c.Background.Top),
		Bottom:     mustColor(c.Background.Bottom),
	}
	for _, h := range c.Comets.Palette {
		opts.Palette = append(opts.Palette, mustColor(h))
	}
	return opts
}

// ParseColor parses an opaque "#rrggbb" color.
func ParseColor(hex string) (color.NRGBA, error) {
	cf, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: color %q: %v", ErrInvalid, hex, err)
	}
	r, g, b := cf.RGB255()
	return color.NRGBA{r, g, b, 0xff}, nil
}

func mustColor(hex string) color.NRGBA {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}
