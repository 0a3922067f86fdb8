package pauses

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/randalmurphal/ptef/freq"
)

func TestCount_Weak(t *testing.T) {
	p := DefaultParams()
	freqs := freq.Frequencies{"e": 100, "um": 50}

	c := Count(freqs, DefaultBlockSize, false, p)
	assert.Equal(t, int64(30), c.Weak, "30%% of 100 connectives")
	assert.Zero(t, c.Structural, "structural disabled")
}

func TestCount_Strong(t *testing.T) {
	p := DefaultParams()
	freqs := freq.Frequencies{
		"mil":     100,
		"milhão":  50,
		"milhões": 30,
		"bilhões": 20,
		"um":      500,
	}

	c := Count(freqs, DefaultBlockSize, false, p)
	// 10% of each boundary token count, truncated per token.
	assert.Equal(t, int64(10+5+3+2), c.Strong)
}

func TestCount_Structural(t *testing.T) {
	p := DefaultParams()
	freqs := freq.Frequencies{"um": 160}

	// 160 tokens / 16 per block = 10 blocks, 9 boundaries, 50% prob.
	c := Count(freqs, 16, true, p)
	assert.Equal(t, int64(4), c.Structural)
}

func TestCount_StructuralEmptyRange(t *testing.T) {
	c := Count(freq.Frequencies{}, 16, true, DefaultParams())
	assert.Zero(t, c.Structural)
	assert.Zero(t, c.Total())
}

func TestCount_BlockSizeFallback(t *testing.T) {
	freqs := freq.Frequencies{"um": 160}
	a := Count(freqs, 0, true, DefaultParams())
	b := Count(freqs, DefaultBlockSize, true, DefaultParams())
	assert.Equal(t, b, a)
}

func TestExpectedDuration(t *testing.T) {
	p := DefaultParams()
	c := Counts{Weak: 10, Strong: 5, Structural: 2}

	expected := 10*0.1 + 5*0.3 + 2*0.2
	assert.InDelta(t, expected, ExpectedDuration(c, p), 1e-12)
}

func TestVarianceDuration(t *testing.T) {
	p := DefaultParams()
	c := Counts{Weak: 10, Strong: 5, Structural: 2}

	expected := 10*0.01 + 5*0.09 + 2*0.04
	assert.InDelta(t, expected, VarianceDuration(c, p), 1e-12)
}

func TestCounts_Total(t *testing.T) {
	c := Counts{Weak: 1, Strong: 2, Structural: 3}
	assert.Equal(t, int64(6), c.Total())
}
