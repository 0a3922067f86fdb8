package ptef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/ptef/duration"
	"github.com/randalmurphal/ptef/freq"
	"github.com/randalmurphal/ptef/grammar"
	"github.com/randalmurphal/ptef/lexicon"
)

func TestEstimate_Basic(t *testing.T) {
	result, err := Estimate(100)
	require.NoError(t, err)

	assert.Positive(t, result.Mean)
	assert.Positive(t, result.Var)
	require.NotNil(t, result.CI95)
	assert.Less(t, result.CI95.Lower, result.Mean)
	assert.Greater(t, result.CI95.Upper, result.Mean)
	assert.Positive(t, result.Details.TotalSyllables)
	assert.NotEmpty(t, result.Details.TokenCounts)
}

func TestEstimate_MeanIsSyllablesPlusPauses(t *testing.T) {
	result, err := Estimate(500)
	require.NoError(t, err)

	assert.InDelta(t,
		result.Details.SyllableDuration+result.Details.PauseDuration,
		result.Mean, 1e-9)
	assert.InDelta(t,
		result.Details.SyllableVariance+result.Details.PauseVariance,
		result.Var, 1e-9)
}

func TestEstimate_WithoutCI(t *testing.T) {
	result, err := Estimate(10, WithoutCI())
	require.NoError(t, err)
	assert.Nil(t, result.CI95)
}

func TestEstimate_UnsupportedPolicy(t *testing.T) {
	_, err := Estimate(10, WithPolicy("R2"))
	assert.ErrorIs(t, err, grammar.ErrUnsupportedPolicy)
}

func TestEstimate_MonotonicInN(t *testing.T) {
	small, err := Estimate(100)
	require.NoError(t, err)
	large, err := Estimate(1000)
	require.NoError(t, err)

	assert.Greater(t, large.Mean, small.Mean)
	assert.Greater(t, large.Details.TotalSyllables, small.Details.TotalSyllables)
}

func TestEstimate_StructuralPausesToggle(t *testing.T) {
	with, err := Estimate(1000)
	require.NoError(t, err)
	without, err := Estimate(1000, WithoutStructuralPauses())
	require.NoError(t, err)

	assert.Zero(t, without.Details.PauseCounts.Structural)
	assert.Greater(t, with.Details.PauseCounts.Structural, int64(0))
	assert.Greater(t, with.Mean, without.Mean)
}

func TestEstimate_DurationParamsApply(t *testing.T) {
	params := duration.DefaultParams()
	params.SpeakerEffect = 2.0

	base, err := Estimate(100, WithoutStructuralPauses())
	require.NoError(t, err)
	scaled, err := Estimate(100, WithoutStructuralPauses(), WithDurationParams(params))
	require.NoError(t, err)

	assert.InDelta(t, 2*base.Details.SyllableDuration, scaled.Details.SyllableDuration, 1e-9)
}

func TestEstimate_CustomLexicon(t *testing.T) {
	// A lexicon that only knows "um" yields exactly one syllable for N=1.
	lex := lexicon.New(map[string]int{"um": 1})
	result, err := Estimate(1, WithLexicon(lex))
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Details.TotalSyllables)
}

func TestEstimateBatch(t *testing.T) {
	results, err := EstimateBatch([]int64{10, 100})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Greater(t, results[100].Mean, results[10].Mean)
}

func TestEstimateBatch_PropagatesErrors(t *testing.T) {
	_, err := EstimateBatch([]int64{10, grammar.MaxNumber + 1})
	assert.ErrorIs(t, err, grammar.ErrOutOfRange)
}

func TestTotalSyllables(t *testing.T) {
	// 1..3: um(1) dois(1) três(1).
	got, err := TotalSyllables(3, grammar.PolicyR1, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)

	// 21 = vinte(2) e(1) um(1) on top of 1..20.
	upTo20, err := TotalSyllables(20, grammar.PolicyR1, nil)
	require.NoError(t, err)
	upTo21, err := TotalSyllables(21, grammar.PolicyR1, nil)
	require.NoError(t, err)
	assert.Equal(t, upTo20+4, upTo21)
}

func TestTotalSyllables_MatchesFrequencies(t *testing.T) {
	const n = 999
	lex := lexicon.Default()

	freqs, _, err := freq.CountRange(n, grammar.PolicyR1)
	require.NoError(t, err)

	var expected int64
	for token, count := range freqs {
		s, err := lex.Syllables(token)
		require.NoError(t, err)
		expected += int64(s) * count
	}

	got, err := TotalSyllables(n, grammar.PolicyR1, lex)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}
