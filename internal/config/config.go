package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTitle  = "gpuhint"
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultFPS    = 60
	DefaultStars  = 2000
)

var (
	ErrUnsupportedFormat = errors.New("config: unsupported file format (want .yaml, .yml or .toml)")
	ErrInvalidWindow     = errors.New("config: window width, height and fps must be positive")
	ErrInvalidStars      = errors.New("config: star count must not be negative")
)

type Config struct {
	GPU    GPU    `yaml:"gpu" toml:"gpu"`
	Window Window `yaml:"window" toml:"window"`
}

type GPU struct {
	// Hint applies the high-performance GPU preference at startup.
	// It has no effect outside Windows.
	Hint bool `yaml:"hint" toml:"hint"`
}

type Window struct {
	Title  string `yaml:"title" toml:"title"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	FPS    int    `yaml:"fps" toml:"fps"`
	Stars  int    `yaml:"stars" toml:"stars"`
	Seed   int64  `yaml:"seed" toml:"seed"` // 0 picks a time-based seed
}

func DefaultConfig() *Config {
	return &Config{
		GPU: GPU{Hint: true},
		Window: Window{
			Title:  DefaultTitle,
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
			Stars:  DefaultStars,
		},
	}
}

// Load reads a YAML or TOML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	switch format(path) {
	case "yaml":
		err = yaml.Unmarshal(data, cfg)
	case "toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	switch format(path) {
	case "yaml":
		data, err = yaml.Marshal(cfg)
	case "toml":
		var sb strings.Builder
		err = toml.NewEncoder(&sb).Encode(cfg)
		data = []byte(sb.String())
	default:
		return ErrUnsupportedFormat
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	w := c.Window
	if w.Width <= 0 || w.Height <= 0 || w.FPS <= 0 {
		return ErrInvalidWindow
	}
	if w.Stars < 0 {
		return ErrInvalidStars
	}
	return nil
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}
