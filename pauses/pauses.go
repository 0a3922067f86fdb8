package pauses

import (
	"github.com/randalmurphal/ptef/freq"
	"github.com/randalmurphal/ptef/grammar"
)

// DefaultBlockSize is the default token block size for structural pauses.
const DefaultBlockSize int64 = 16

// strongBoundaryTokens mark the magnitude boundaries that attract a strong
// prosodic pause.
var strongBoundaryTokens = []string{"mil", "milhão", "milhões", "bilhão", "bilhões"}

// Params holds the pause durations and occurrence probabilities.
type Params struct {
	// WeakDuration is the length of a weak prosodic pause in seconds.
	WeakDuration float64 `yaml:"weak_duration" toml:"weak_duration" json:"weak_duration"`

	// StrongDuration is the length of a strong boundary pause in seconds.
	StrongDuration float64 `yaml:"strong_duration" toml:"strong_duration" json:"strong_duration"`

	// WeakProb is the probability a connective is followed by a weak pause.
	WeakProb float64 `yaml:"weak_prob" toml:"weak_prob" json:"weak_prob"`

	// StrongProb is the probability a magnitude boundary is followed by a
	// strong pause.
	StrongProb float64 `yaml:"strong_prob" toml:"strong_prob" json:"strong_prob"`

	// StructuralDuration is the length of a between-blocks pause in seconds.
	StructuralDuration float64 `yaml:"structural_duration" toml:"structural_duration" json:"structural_duration"`

	// StructuralProb is the probability of a pause at a block boundary.
	StructuralProb float64 `yaml:"structural_prob" toml:"structural_prob" json:"structural_prob"`
}

// DefaultParams returns the baseline pause parameters.
func DefaultParams() Params {
	return Params{
		WeakDuration:       0.1,
		StrongDuration:     0.3,
		WeakProb:           0.3,
		StrongProb:         0.1,
		StructuralDuration: 0.2,
		StructuralProb:     0.5,
	}
}

// Counts holds expected pause counts by class.
type Counts struct {
	Weak       int64 `json:"weak"`
	Strong     int64 `json:"strong"`
	Structural int64 `json:"structural"`
}

// Total returns the total pause count across classes.
func (c Counts) Total() int64 {
	return c.Weak + c.Strong + c.Structural
}

// Count derives pause counts from aggregate token frequencies. blockSize
// controls structural pause spacing; structural pauses are skipped entirely
// when structural is false. blockSize values below 1 fall back to
// DefaultBlockSize.
func Count(freqs freq.Frequencies, blockSize int64, structural bool, p Params) Counts {
	if blockSize < 1 {
		blockSize = DefaultBlockSize
	}

	var c Counts
	c.Weak = int64(float64(freqs[grammar.Connective]) * p.WeakProb)

	for _, tok := range strongBoundaryTokens {
		if n := freqs[tok]; n > 0 {
			c.Strong += int64(float64(n) * p.StrongProb)
		}
	}

	if structural {
		total := freqs.Total()
		blocks := (total + blockSize - 1) / blockSize
		if blocks > 1 {
			c.Structural = int64(float64(blocks-1) * p.StructuralProb)
		}
	}

	return c
}

// ExpectedDuration returns the expected total pause time in seconds.
func ExpectedDuration(c Counts, p Params) float64 {
	return float64(c.Weak)*p.WeakDuration +
		float64(c.Strong)*p.StrongDuration +
		float64(c.Structural)*p.StructuralDuration
}

// VarianceDuration returns the variance of the total pause time, treating
// each pause as independent with variance equal to its squared duration.
func VarianceDuration(c Counts, p Params) float64 {
	return float64(c.Weak)*p.WeakDuration*p.WeakDuration +
		float64(c.Strong)*p.StrongDuration*p.StrongDuration +
		float64(c.Structural)*p.StructuralDuration*p.StructuralDuration
}
