package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/flock/core"
	"github.com/lixenwraith/flock/flock"
	"github.com/lixenwraith/flock/parameter"
)

// ErrInvalidConfig is returned for scene files that fail validation
var ErrInvalidConfig = errors.New("invalid scene config")

// Scene is one narrative step; its position in Config.Scenes is its index
type Scene struct {
	ID      string    `yaml:"id" json:"id"`
	Mode    core.Mode `yaml:"mode" json:"mode"`
	Entity  string    `yaml:"entity,omitempty" json:"entity,omitempty"`
	Caption string    `yaml:"caption,omitempty" json:"caption,omitempty"`
}

// Config is the static scene list plus ring geometry
type Config struct {
	Rings  []flock.RingSpec `yaml:"rings" json:"rings"`
	Scenes []Scene          `yaml:"scenes" json:"scenes"`
}

// Parse decodes and validates a YAML scene document
// Missing rings fall back to flock.DefaultRings
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(cfg.Rings) == 0 {
		cfg.Rings = flock.DefaultRings()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads and parses a scene file
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenes: %w", err)
	}
	return Parse(data)
}

// Validate checks the scene list is usable by a Controller
func (c *Config) Validate() error {
	if len(c.Scenes) == 0 {
		return fmt.Errorf("%w: no scenes", ErrInvalidConfig)
	}
	for i, r := range c.Rings {
		if !(r.Factor > 0) || r.Factor > 1 {
			return fmt.Errorf("%w: ring %d factor %v", ErrInvalidConfig, i, r.Factor)
		}
	}
	for i, s := range c.Scenes {
		if s.ID == "" {
			return fmt.Errorf("%w: scene %d has no id", ErrInvalidConfig, i)
		}
		if !s.Mode.Valid() {
			return fmt.Errorf("%w: scene %d mode %d", ErrInvalidConfig, i, s.Mode)
		}
		if s.ID == parameter.SceneBand && s.Entity == "" {
			return fmt.Errorf("%w: band scene %d has no entity", ErrInvalidConfig, i)
		}
	}
	return nil
}

// CheckEntities verifies every scene entity reference resolves in f
func (c *Config) CheckEntities(f *flock.Flock) error {
	for i, s := range c.Scenes {
		if s.Entity == "" {
			continue
		}
		if _, ok := f.Lookup(s.Entity); !ok {
			return fmt.Errorf("%w: scene %d entity %q", ErrUnknownEntity, i, s.Entity)
		}
	}
	return nil
}
