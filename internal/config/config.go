package config

import (
	"fmt"
	"os"

	"github.com/san-kum/galaxy/internal/dynamo"
	"gopkg.in/yaml.v3"
)

const (
	DefaultParticles = 1000
	DefaultGravity   = 0.00001
	DefaultFPS       = 60
	DefaultRenderer  = "tui"
	DefaultLogLevel  = "info"
	DefaultTheme     = "cyberpunk"
)

// AllowedCounts is the fixed set of particle counts a run may use.
var AllowedCounts = []int{2, 5, 10, 100, 500, 1000, 2000, 5000, 10000}

type Config struct {
	Particles int     `yaml:"particles"`
	Gravity   float64 `yaml:"gravity"`
	Seed      int64   `yaml:"seed"`
	FPS       int     `yaml:"fps"`
	Simulate  bool    `yaml:"simulate"`
	Renderer  string  `yaml:"renderer"`
	LogLevel  string  `yaml:"log_level"`
	Theme     string  `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Particles: DefaultParticles,
		Gravity:   DefaultGravity,
		FPS:       DefaultFPS,
		Simulate:  true,
		Renderer:  DefaultRenderer,
		LogLevel:  DefaultLogLevel,
		Theme:     DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

func (c *Config) Validate() error {
	if err := ValidateCount(c.Particles); err != nil {
		return err
	}
	if c.Gravity <= 0 {
		return fmt.Errorf("%w: gravity must be positive, got %g", dynamo.ErrParameterBounds, c.Gravity)
	}
	if c.FPS < 0 {
		return fmt.Errorf("%w: fps must not be negative, got %d", dynamo.ErrParameterBounds, c.FPS)
	}
	switch c.Renderer {
	case "tui", "gui", "headless":
	default:
		return fmt.Errorf("%w: unknown renderer %q", dynamo.ErrParameterBounds, c.Renderer)
	}
	return nil
}

func ValidCount(n int) bool {
	return indexOf(n) >= 0
}

func ValidateCount(n int) error {
	if !ValidCount(n) {
		return fmt.Errorf("%w: %d (allowed: %v)", dynamo.ErrInvalidCount, n, AllowedCounts)
	}
	return nil
}

// NextCount returns the allowed count after n, staying put at the top end.
// A count outside the set snaps to the default.
func NextCount(n int) int {
	i := indexOf(n)
	if i < 0 {
		return DefaultParticles
	}
	if i+1 < len(AllowedCounts) {
		return AllowedCounts[i+1]
	}
	return n
}

// PrevCount returns the allowed count before n, staying put at the bottom end.
func PrevCount(n int) int {
	i := indexOf(n)
	if i < 0 {
		return DefaultParticles
	}
	if i > 0 {
		return AllowedCounts[i-1]
	}
	return n
}

func indexOf(n int) int {
	for i, c := range AllowedCounts {
		if c == n {
			return i
		}
	}
	return -1
}
