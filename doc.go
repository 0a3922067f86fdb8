// Package ptef estimates the pronunciation time of counting aloud from 1 to
// N in Brazilian Portuguese.
//
// The estimation pipeline composes the subpackages: grammar verbalizes
// integers into word tokens, freq aggregates token frequencies over the
// whole range without enumerating every integer, lexicon resolves tokens to
// syllable counts, and duration and pauses turn syllables and boundaries
// into seconds. Each subpackage is usable independently:
//
//   - grammar: integer → Brazilian Portuguese word tokens
//   - freq: token frequency aggregation over [1, N]
//   - lexicon: token → syllable-count tables
//   - duration: lognormal syllable microduration model
//   - pauses: prosodic pause counting
//   - bootstrap: Monte Carlo confidence intervals
//   - config: parameter files (YAML/TOML), watching, JSON schema
//
// # Quick start
//
//	result, err := ptef.Estimate(1_000_000)
//	if err != nil {
//		// handle
//	}
//	fmt.Printf("%.1fs ± [%.1f, %.1f]\n", result.Mean, result.CI95.Lower, result.CI95.Upper)
//
// Overrides use functional options:
//
//	result, err := ptef.Estimate(5000,
//		ptef.WithDurationParams(params),
//		ptef.WithBlockSize(32),
//		ptef.WithoutStructuralPauses(),
//	)
//
// All computation is pure and synchronous; Estimate is safe to call
// concurrently.
package ptef
