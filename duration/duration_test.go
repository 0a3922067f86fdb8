package duration

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/ptef/lexicon"
)

func TestExpectedSyllable(t *testing.T) {
	p := DefaultParams()

	// exp(0.15 + 0.09/2) with speaker effect 1.
	expected := math.Exp(0.15 + 0.045)
	assert.InDelta(t, expected, p.ExpectedSyllable(), 1e-12)
}

func TestExpectedSyllable_SpeakerEffect(t *testing.T) {
	p := DefaultParams()
	p.SpeakerEffect = 2.0

	base := DefaultParams().ExpectedSyllable()
	assert.InDelta(t, 2*base, p.ExpectedSyllable(), 1e-12)
}

func TestVarianceSyllable(t *testing.T) {
	p := DefaultParams()

	expected := math.Exp(2*0.15+0.09) * (math.Exp(0.09) - 1)
	assert.InDelta(t, expected, p.VarianceSyllable(), 1e-12)

	// Speaker effect scales variance quadratically.
	p.SpeakerEffect = 3.0
	assert.InDelta(t, 9*expected, p.VarianceSyllable(), 1e-12)
}

func TestExpectedFor(t *testing.T) {
	p := DefaultParams()

	assert.Zero(t, p.ExpectedFor(0))
	assert.InDelta(t, 100*p.ExpectedSyllable(), p.ExpectedFor(100), 1e-9)

	// Fatigue inflates linearly.
	p.FatigueCoeff = 0.01
	expected := p.ExpectedSyllable() * 100 * (1 + 0.01*100)
	assert.InDelta(t, expected, p.ExpectedFor(100), 1e-9)
}

func TestVarianceFor_ScalesLinearly(t *testing.T) {
	p := DefaultParams()
	assert.InDelta(t, 50*p.VarianceSyllable(), p.VarianceFor(50), 1e-9)
}

func TestContextualMu_Baseline(t *testing.T) {
	m := DefaultContextModel()

	// A neutral unstressed token with zero covariates: only the
	// position-zero stress bonus distinguishes it from MuBase.
	f := Features{PositionInGroup: 1, RecentComplexity: 0}
	mu := m.ContextualMu(f)
	assert.InDelta(t, m.MuBase+m.BetaPosition*0.001, mu, 1e-12)
}

func TestContextualMu_Covariates(t *testing.T) {
	m := DefaultContextModel()

	f := Features{
		PositionInGroup:  500,
		RecentComplexity: 2.0,
		HasLongWords:     true,
		IsConnective:     true,
		IsBoundary:       true,
		Stressed:         true,
		Fatigue:          0.1,
	}
	expected := m.MuBase +
		m.BetaPosition*0.5 +
		m.BetaComplexity*2.0 +
		m.BetaLongWords +
		m.BetaConnective +
		m.BetaBoundary +
		m.BetaStress +
		0.1
	assert.InDelta(t, expected, m.ContextualMu(f), 1e-12)
}

func TestContextualMu_ConnectiveShortens(t *testing.T) {
	m := DefaultContextModel()

	base := Features{PositionInGroup: 5}
	conn := base
	conn.IsConnective = true

	assert.Less(t, m.ContextualMu(conn), m.ContextualMu(base))
}

func TestExtractFeatures(t *testing.T) {
	lex := lexicon.Default()

	f := ExtractFeatures("e", 30, []string{"novecentos", "e", "noventa"}, 2000, lex, true)

	assert.True(t, f.IsConnective)
	assert.True(t, f.IsBoundary)
	assert.True(t, f.Stressed, "positions divisible by 10 are stressed")
	// novecentos=4, e=1, noventa=3 → mean 8/3
	assert.InDelta(t, 8.0/3.0, f.RecentComplexity, 1e-12)
	// "novecentos" has 10 runes
	assert.True(t, f.HasLongWords)
	assert.InDelta(t, 0.2, f.Fatigue, 1e-12)
}

func TestExtractFeatures_FatigueCapped(t *testing.T) {
	lex := lexicon.Default()
	f := ExtractFeatures("um", 1, nil, 1_000_000, lex, false)
	assert.InDelta(t, 0.5, f.Fatigue, 1e-12)
	assert.InDelta(t, 1.0, f.RecentComplexity, 1e-12, "no recent tokens defaults to 1")
}

func TestExtractFeatures_UnknownTokensCountOne(t *testing.T) {
	lex := lexicon.Default()
	f := ExtractFeatures("um", 1, []string{"xyz", "um"}, 0, lex, false)
	assert.InDelta(t, 1.0, f.RecentComplexity, 1e-12)
}

func TestExpectedWithContext(t *testing.T) {
	m := DefaultContextModel()
	lex := lexicon.Default()

	f := Features{PositionInGroup: 1}
	got, err := m.ExpectedWithContext("quatorze", f, lex)
	require.NoError(t, err)

	mu := m.ContextualMu(f)
	assert.InDelta(t, 3*math.Exp(mu+m.Sigma*m.Sigma/2), got, 1e-12)
}

func TestExpectedWithContext_UnknownToken(t *testing.T) {
	m := DefaultContextModel()
	_, err := m.ExpectedWithContext("abacaxi", Features{}, lexicon.Default())
	assert.ErrorIs(t, err, lexicon.ErrUnknownToken)
}

func TestVarianceWithContext(t *testing.T) {
	m := DefaultContextModel()
	lex := lexicon.Default()

	f := Features{PositionInGroup: 1}
	got, err := m.VarianceWithContext("quatorze", f, lex)
	require.NoError(t, err)

	mu := m.ContextualMu(f)
	s2 := m.Sigma * m.Sigma
	assert.InDelta(t, 9*math.Exp(2*mu+s2)*(math.Exp(s2)-1), got, 1e-12)
}
