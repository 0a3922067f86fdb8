package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/ptef/bootstrap"
	"github.com/randalmurphal/ptef/duration"
	"github.com/randalmurphal/ptef/grammar"
	"github.com/randalmurphal/ptef/pauses"
)

// ErrUnknownFormat is returned when a file extension is neither TOML nor YAML.
var ErrUnknownFormat = errors.New("unknown config format")

// Format identifies a parameter file format.
type Format int

const (
	// FormatAuto detects the format from the file extension.
	FormatAuto Format = iota

	// FormatTOML forces TOML parsing.
	FormatTOML

	// FormatYAML forces YAML parsing.
	FormatYAML
)

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// File is the full estimation parameter document.
// Zero-value fields fall back to package defaults when loaded.
type File struct {
	// Policy selects the verbalization policy. Default: "R1".
	Policy grammar.Policy `yaml:"policy" toml:"policy" json:"policy"`

	// BlockSize is the token block size used for structural pauses.
	// Default: pauses.DefaultBlockSize.
	BlockSize int64 `yaml:"block_size" toml:"block_size" json:"block_size"`

	// StructuralPauses toggles block-boundary pauses. Default: true.
	StructuralPauses bool `yaml:"structural_pauses" toml:"structural_pauses" json:"structural_pauses"`

	// Duration holds the lognormal syllable duration parameters.
	Duration duration.Params `yaml:"duration" toml:"duration" json:"duration"`

	// Pauses holds the pause duration and probability parameters.
	Pauses pauses.Params `yaml:"pauses" toml:"pauses" json:"pauses"`

	// Bootstrap holds the resampling configuration.
	Bootstrap bootstrap.Config `yaml:"bootstrap" toml:"bootstrap" json:"bootstrap"`
}

// Default returns a File populated with every package's defaults.
func Default() File {
	return File{
		Policy:           grammar.PolicyR1,
		BlockSize:        pauses.DefaultBlockSize,
		StructuralPauses: true,
		Duration:         duration.DefaultParams(),
		Pauses:           pauses.DefaultParams(),
		Bootstrap:        bootstrap.DefaultConfig(),
	}
}

// Load reads a parameter file, auto-detecting the format from its extension.
// Fields absent from the file keep their defaults.
func Load(path string) (File, error) {
	return LoadFormat(path, FormatAuto)
}

// LoadFormat reads a parameter file with an explicit format.
func LoadFormat(path string, format Format) (File, error) {
	if format == FormatAuto {
		var err error
		format, err = detectFormat(path)
		if err != nil {
			return File{}, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading config: %w", err)
	}

	return Parse(data, format)
}

// Parse decodes raw parameter data in the given format over the defaults.
func Parse(data []byte, format Format) (File, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return File{}, fmt.Errorf("parsing toml config: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return File{}, fmt.Errorf("parsing yaml config: %w", err)
		}
	default:
		return File{}, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	cfg.normalize()
	return cfg, nil
}

// detectFormat maps a file extension to a format.
func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(path))
	}
}

// normalize backfills fields an explicit file left at their zero value.
func (f *File) normalize() {
	if f.Policy == "" {
		f.Policy = grammar.PolicyR1
	}
	if f.BlockSize <= 0 {
		f.BlockSize = pauses.DefaultBlockSize
	}
	if f.Bootstrap.Samples <= 0 {
		f.Bootstrap.Samples = bootstrap.DefaultConfig().Samples
	}
	if f.Bootstrap.Confidence <= 0 || f.Bootstrap.Confidence >= 1 {
		f.Bootstrap.Confidence = bootstrap.DefaultConfig().Confidence
	}
	if f.Bootstrap.Method == "" {
		f.Bootstrap.Method = bootstrap.MethodPercentile
	}
	if f.Duration.Sigma <= 0 {
		f.Duration.Sigma = duration.DefaultSigma
	}
	if f.Duration.SpeakerEffect <= 0 {
		f.Duration.SpeakerEffect = 1.0
	}
}
