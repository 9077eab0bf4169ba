package drawing

import (
	"errors"
	"fmt"
	"math"
	"os"

	"honnef.co/go/draft"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of a [Document].
//
// An example configuration:
//
//	tolerance: 1e-9
//	layer: construction
//	pen:
//	  color: "#ff0000"
//	  width: 0.35
//	  line_type: dashed
type Config struct {
	// Tolerance is passed to constructions, see [draft.DefaultTolerance].
	Tolerance float64 `yaml:"tolerance"`
	// Layer and Pen are assigned to new entities.
	Layer string `yaml:"layer"`
	Pen   Pen    `yaml:"pen"`
}

// DefaultConfig returns the configuration used for fields that a
// configuration file omits.
func DefaultConfig() Config {
	return Config{
		Tolerance: draft.DefaultTolerance,
		Layer:     "0",
		Pen: Pen{
			Color:    "by-layer",
			Width:    0.25,
			LineType: "continuous",
		},
	}
}

// Validate checks that the tolerance is positive and finite, the layer is
// named and the pen width is not negative.
func (cfg Config) Validate() error {
	if !(cfg.Tolerance > 0) || math.IsInf(cfg.Tolerance, 0) {
		return fmt.Errorf("%w: tolerance %v is not positive", ErrInvalidConfig, cfg.Tolerance)
	}
	if cfg.Layer == "" {
		return fmt.Errorf("%w: empty layer name", ErrInvalidConfig)
	}
	if cfg.Pen.Width < 0 {
		return fmt.Errorf("%w: negative pen width %v", ErrInvalidConfig, cfg.Pen.Width)
	}
	return nil
}

// ParseConfig parses a YAML configuration. Omitted fields keep their
// default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML configuration file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
