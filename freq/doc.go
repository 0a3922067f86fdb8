// Package freq aggregates word-token frequencies over integer ranges.
//
// CountRange returns, for the range [1, N], how many times each spoken-word
// token appears across the verbalizations of every integer in the range,
// plus the total connective ("e") count:
//
//	freqs, connectives, err := freq.CountRange(2001, grammar.PolicyR1)
//	freqs["mil"] // 1002: every number from 1000 to 2001 contains "mil"
//
// Small ranges (N <= 999) are enumerated directly through the grammar. Larger
// ranges use block decomposition: [1, N] is expressed as structural copies of
// the sub-scale range plus per-block prefix tokens, reusing precomputed base
// tables for [1, 999], [1, 999999] and [1, 999999999]. The tables are built
// once on first use and shared read-only across concurrent callers.
//
// The decomposition is exactly consistent with brute-force enumeration for
// every N; the property tests in this package enforce that equivalence. The
// per-block loop runs once per thousand/million/billion block at its own
// scale, so cost grows with the block count at each scale rather than with N.
package freq
