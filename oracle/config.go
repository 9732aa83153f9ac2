package oracle

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ninegrid/gridcodec"
)

// DefaultMaxSubsetSize keeps a default oracle file small (407 rows).
const DefaultMaxSubsetSize = 2

// Config controls oracle generation and verification.
type Config struct {
	// Output is the path of the oracle file to write or verify.
	Output string `yaml:"output"`
	// MaxSubsetSize is the largest selection size written by Generate.
	MaxSubsetSize int `yaml:"max_subset_size"`
	// Header writes (or expects) the "edges,hash" header row.
	Header bool `yaml:"header"`
	// Verify checks Output instead of writing it.
	Verify bool `yaml:"verify"`
}

// DefaultConfig returns a Config with Output="oracle.csv",
// MaxSubsetSize=DefaultMaxSubsetSize and Header=true.
func DefaultConfig() Config {
	return Config{
		Output:        "oracle.csv",
		MaxSubsetSize: DefaultMaxSubsetSize,
		Header:        true,
	}
}

// Validate returns an error wrapping ErrBadConfig if cfg cannot be used.
func (cfg Config) Validate() error {
	if cfg.Output == "" {
		return errors.Wrap(ErrBadConfig, "output path must be set")
	}
	if cfg.MaxSubsetSize < 0 || cfg.MaxSubsetSize > gridcodec.EdgeCount {
		return errors.Wrapf(ErrBadConfig, "max_subset_size %d not in [0,%d]", cfg.MaxSubsetSize, gridcodec.EdgeCount)
	}
	return nil
}

// LoadConfig reads a YAML config from path on top of DefaultConfig.
// Missing keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, cfg.Validate()
}
