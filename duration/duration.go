package duration

import "math"

// Default lognormal parameters for Brazilian Portuguese syllables.
const (
	DefaultMu    = 0.15
	DefaultSigma = 0.3
)

// Params holds the lognormal microduration parameters.
type Params struct {
	// Mu is the mean of log duration in seconds.
	Mu float64 `yaml:"mu" toml:"mu" json:"mu"`

	// Sigma is the standard deviation of log duration.
	Sigma float64 `yaml:"sigma" toml:"sigma" json:"sigma"`

	// SpeakerEffect is a multiplicative per-speaker scaling.
	SpeakerEffect float64 `yaml:"speaker_effect" toml:"speaker_effect" json:"speaker_effect"`

	// FatigueCoeff inflates expected duration linearly per syllable spoken.
	FatigueCoeff float64 `yaml:"fatigue_coeff" toml:"fatigue_coeff" json:"fatigue_coeff"`

	// StressedMult and UnstressedMult scale durations by stress pattern.
	StressedMult   float64 `yaml:"stressed_mult" toml:"stressed_mult" json:"stressed_mult"`
	UnstressedMult float64 `yaml:"unstressed_mult" toml:"unstressed_mult" json:"unstressed_mult"`
}

// DefaultParams returns the baseline parameters.
func DefaultParams() Params {
	return Params{
		Mu:             DefaultMu,
		Sigma:          DefaultSigma,
		SpeakerEffect:  1.0,
		FatigueCoeff:   0.0,
		StressedMult:   1.2,
		UnstressedMult: 0.9,
	}
}

// ExpectedSyllable returns the expected duration of one syllable in seconds.
func (p Params) ExpectedSyllable() float64 {
	return math.Exp(p.Mu+p.Sigma*p.Sigma/2) * p.SpeakerEffect
}

// VarianceSyllable returns the variance of one syllable's duration.
func (p Params) VarianceSyllable() float64 {
	v := math.Exp(2*p.Mu+p.Sigma*p.Sigma) * (math.Exp(p.Sigma*p.Sigma) - 1)
	return v * p.SpeakerEffect * p.SpeakerEffect
}

// ExpectedFor returns the expected total duration of n syllables, with the
// linear fatigue inflation applied.
func (p Params) ExpectedFor(n int64) float64 {
	fatigue := 1.0 + p.FatigueCoeff*float64(n)
	return p.ExpectedSyllable() * float64(n) * fatigue
}

// VarianceFor returns the variance of the total duration of n independent
// syllables.
func (p Params) VarianceFor(n int64) float64 {
	return p.VarianceSyllable() * float64(n)
}
