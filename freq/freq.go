package freq

import (
	"fmt"
	"sync"

	"github.com/randalmurphal/ptef/grammar"
)

// Frequencies maps a word token to its total occurrence count across a range
// of integers. Values are always positive; absent tokens have count zero.
type Frequencies map[string]int64

// Add increments the count for token by n. Non-positive increments are
// ignored so that maps stay free of zero entries and compare equal to
// enumeration results key-wise.
func (f Frequencies) Add(token string, n int64) {
	if n > 0 {
		f[token] += n
	}
}

// Merge adds every entry of other into f.
func (f Frequencies) Merge(other Frequencies) {
	for token, count := range other {
		f[token] += count
	}
}

// Clone returns an independent copy of f.
func (f Frequencies) Clone() Frequencies {
	out := make(Frequencies, len(f))
	for token, count := range f {
		out[token] = count
	}
	return out
}

// Total returns the sum of all counts, i.e. the total number of tokens
// spoken across the range.
func (f Frequencies) Total() int64 {
	var total int64
	for _, count := range f {
		total += count
	}
	return total
}

// Connectives returns the total count of the "e" connective.
func (f Frequencies) Connectives() int64 {
	return f[grammar.Connective]
}

// enumerationThreshold is the largest N counted by direct per-integer
// enumeration. It matches the base table range [1, 999].
const enumerationThreshold int64 = 999

// Base tables for the full sub-scale ranges, built once and read-only after.
var tables struct {
	once     sync.Once
	upTo999  Frequencies // [1, 999]
	upToMil  Frequencies // [1, 999 999]
	upToMilh Frequencies // [1, 999 999 999]
}

// CountRange counts token occurrences across [1, N] under the given policy.
//
// N <= 0 yields an empty map and zero connectives. The connective count it
// returns equals the "e" entry of the returned map. Policies other than R1
// fail with grammar.ErrUnsupportedPolicy; N beyond the grammar's lexical
// range fails with grammar.ErrOutOfRange.
func CountRange(n int64, policy grammar.Policy) (Frequencies, int64, error) {
	if policy != grammar.PolicyR1 {
		return nil, 0, fmt.Errorf("%w: %q", grammar.ErrUnsupportedPolicy, policy)
	}
	if n <= 0 {
		return Frequencies{}, 0, nil
	}
	if n > grammar.MaxNumber {
		return nil, 0, fmt.Errorf("%w: %d", grammar.ErrOutOfRange, n)
	}

	tables.once.Do(buildTables)

	out, err := countUpTo(n)
	if err != nil {
		return nil, 0, err
	}
	return out, out[grammar.Connective], nil
}

// buildTables precomputes the full-range tables bottom-up. Each level loops
// over at most 999 blocks of the level below.
func buildTables() {
	t999, err := enumerate(enumerationThreshold)
	if err != nil {
		panic(fmt.Sprintf("freq: base table: %v", err))
	}
	t6, err := countScaled(999_999, 1_000, t999)
	if err != nil {
		panic(fmt.Sprintf("freq: thousands table: %v", err))
	}
	t9, err := countScaled(999_999_999, 1_000_000, t6)
	if err != nil {
		panic(fmt.Sprintf("freq: millions table: %v", err))
	}
	tables.upTo999 = t999
	tables.upToMil = t6
	tables.upToMilh = t9
}

// countUpTo dispatches on N's magnitude scale. Each scale counts the full
// sub-scale range once, then loops over its own blocks.
func countUpTo(n int64) (Frequencies, error) {
	switch {
	case n <= enumerationThreshold:
		return enumerate(n)
	case n < 1_000_000:
		return countScaled(n, 1_000, tables.upTo999)
	case n < 1_000_000_000:
		return countScaled(n, 1_000_000, tables.upToMil)
	default:
		return countScaled(n, 1_000_000_000, tables.upToMilh)
	}
}

// enumerate counts tokens over [1, n] by direct calls into the grammar.
// Also the ground truth for the block decomposition's property tests.
func enumerate(n int64) (Frequencies, error) {
	out := Frequencies{}
	for i := int64(1); i <= n; i++ {
		toks, err := grammar.Verbalize(i, grammar.PolicyR1)
		if err != nil {
			return nil, err
		}
		for _, tok := range toks {
			out.Add(tok, 1)
		}
	}
	return out, nil
}

// countScaled counts [1, n] for n within [factor, factor*1000) at the given
// scale. sub is the precomputed table for the full sub-scale range
// [1, factor-1].
//
// Block k spans [k*factor, k*factor + span] where span caps at factor-1 or
// at N for the final partial block. Every number in the block shares the
// tokens of k*factor's own verbalization (the block prefix plus the scale
// word), every nonzero offset j adds one connective, and the offsets
// themselves mirror [1, span] structurally. The loop re-verbalizes the
// prefix once per block rather than folding blocks into closed form.
func countScaled(n, factor int64, sub Frequencies) (Frequencies, error) {
	out := sub.Clone()

	blocks := n / factor
	for k := int64(1); k <= blocks; k++ {
		head, err := grammar.Verbalize(k*factor, grammar.PolicyR1)
		if err != nil {
			return nil, err
		}

		span := factor - 1
		if rem := n - k*factor; rem < span {
			span = rem
		}

		for _, tok := range head {
			out.Add(tok, span+1)
		}
		out.Add(grammar.Connective, span)

		switch {
		case span == factor-1:
			out.Merge(sub)
		case span > 0:
			part, err := countUpTo(span)
			if err != nil {
				return nil, err
			}
			out.Merge(part)
		}
	}

	return out, nil
}
