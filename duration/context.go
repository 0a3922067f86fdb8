package duration

import (
	"math"

	"github.com/randalmurphal/ptef/lexicon"
)

// Feature extraction constants.
const (
	recentWindow     = 5      // tokens considered for recent complexity
	longWordWindow   = 3      // tokens checked for long words
	longWordRunes    = 8      // rune count beyond which a token is "long"
	fatiguePerSyll   = 0.0001 // accumulated fatigue per syllable spoken
	fatigueCap       = 0.5    // fatigue never inflates mu by more than this
	positionGroupLen = 1000.0 // normalizer for position within a group
)

// Features are the contextual covariates for one token.
type Features struct {
	PositionInGroup  int     // position within the current 0-999 group
	RecentComplexity float64 // mean syllable count of recent tokens
	HasLongWords     bool    // recent tokens include a long word
	Fatigue          float64 // accumulated fatigue effect
	IsConnective     bool    // token is "e"
	IsBoundary       bool    // token sits at a prosodic boundary
	Stressed         bool    // stressed position
}

// ContextModel parameterizes the conditional log-mean mu(x).
type ContextModel struct {
	BetaPosition   float64 `yaml:"beta_position" toml:"beta_position" json:"beta_position"`
	BetaComplexity float64 `yaml:"beta_complexity" toml:"beta_complexity" json:"beta_complexity"`
	BetaLongWords  float64 `yaml:"beta_long_words" toml:"beta_long_words" json:"beta_long_words"`
	BetaConnective float64 `yaml:"beta_connective" toml:"beta_connective" json:"beta_connective"`
	BetaBoundary   float64 `yaml:"beta_boundary" toml:"beta_boundary" json:"beta_boundary"`
	BetaStress     float64 `yaml:"beta_stress" toml:"beta_stress" json:"beta_stress"`

	MuBase float64 `yaml:"mu_base" toml:"mu_base" json:"mu_base"`
	Sigma  float64 `yaml:"sigma" toml:"sigma" json:"sigma"`

	FatigueCoeff float64 `yaml:"fatigue_coeff" toml:"fatigue_coeff" json:"fatigue_coeff"`

	// SpeakerEffects maps speaker IDs to multiplicative effects. The
	// "default" entry applies when no speaker is selected.
	SpeakerEffects map[string]float64 `yaml:"speaker_effects" toml:"speaker_effects" json:"speaker_effects"`
}

// DefaultContextModel returns the fitted baseline coefficients.
func DefaultContextModel() ContextModel {
	return ContextModel{
		BetaPosition:   0.001,
		BetaComplexity: 0.05,
		BetaLongWords:  0.02,
		BetaConnective: -0.1,
		BetaBoundary:   0.15,
		BetaStress:     0.1,
		MuBase:         DefaultMu,
		Sigma:          DefaultSigma,
		FatigueCoeff:   fatiguePerSyll,
		SpeakerEffects: map[string]float64{"default": 1.0},
	}
}

// ExtractFeatures derives the covariates for token at the given position.
// recent holds the tokens spoken before it; accumulatedSyllables is the
// running total across the whole utterance. Tokens without a lexicon entry
// count as one syllable.
func ExtractFeatures(token string, position int, recent []string, accumulatedSyllables int64, lex *lexicon.Table, boundary bool) Features {
	window := recent
	if len(window) > recentWindow {
		window = window[len(window)-recentWindow:]
	}
	complexity := 1.0
	if len(window) > 0 {
		var sum int
		for _, tok := range window {
			count, err := lex.Syllables(tok)
			if err != nil {
				count = 1
			}
			sum += count
		}
		complexity = float64(sum) / float64(len(window))
	}

	longWindow := recent
	if len(longWindow) > longWordWindow {
		longWindow = longWindow[len(longWindow)-longWordWindow:]
	}
	hasLong := false
	for _, tok := range longWindow {
		if len([]rune(tok)) > longWordRunes {
			hasLong = true
			break
		}
	}

	fatigue := math.Min(float64(accumulatedSyllables)*fatiguePerSyll, fatigueCap)

	return Features{
		PositionInGroup:  position,
		RecentComplexity: complexity,
		HasLongWords:     hasLong,
		Fatigue:          fatigue,
		IsConnective:     token == "e",
		IsBoundary:       boundary,
		Stressed:         position%10 == 0,
	}
}

// ContextualMu computes mu(x) = beta'x + mu_base, plus the log-space speaker
// effect and the accumulated fatigue.
func (m ContextModel) ContextualMu(f Features) float64 {
	mu := m.MuBase
	mu += m.BetaPosition * (float64(f.PositionInGroup) / positionGroupLen)
	mu += m.BetaComplexity * f.RecentComplexity
	if f.HasLongWords {
		mu += m.BetaLongWords
	}
	if f.IsConnective {
		mu += m.BetaConnective
	}
	if f.IsBoundary {
		mu += m.BetaBoundary
	}
	if f.Stressed {
		mu += m.BetaStress
	}

	if effect, ok := m.SpeakerEffects["default"]; ok && effect > 0 {
		mu += math.Log(effect)
	}
	mu += f.Fatigue

	return mu
}

// ExpectedWithContext returns E[d(t)|x] = s(t) * exp(mu(x) + sigma^2/2).
func (m ContextModel) ExpectedWithContext(token string, f Features, lex *lexicon.Table) (float64, error) {
	s, err := lex.Syllables(token)
	if err != nil {
		return 0, err
	}
	mu := m.ContextualMu(f)
	return float64(s) * math.Exp(mu+m.Sigma*m.Sigma/2), nil
}

// VarianceWithContext returns
// Var[d(t)|x] = s(t)^2 * exp(2*mu(x) + sigma^2) * (exp(sigma^2) - 1).
func (m ContextModel) VarianceWithContext(token string, f Features, lex *lexicon.Table) (float64, error) {
	s, err := lex.Syllables(token)
	if err != nil {
		return 0, err
	}
	mu := m.ContextualMu(f)
	s2 := float64(s) * float64(s)
	return s2 * math.Exp(2*mu+m.Sigma*m.Sigma) * (math.Exp(m.Sigma*m.Sigma) - 1), nil
}
