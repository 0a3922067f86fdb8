// Package bootstrap estimates pronunciation-time confidence intervals by
// Monte Carlo resampling rather than the closed-form normal approximation.
//
// Each bootstrap replicate redraws every syllable duration from the
// lognormal microduration distribution and every pause from its class's
// lognormal, then sums; intervals come from the empirical distribution of
// the replicates:
//
//	cfg := bootstrap.DefaultConfig()
//	cfg.Seed = 42
//	result, err := bootstrap.Estimate(1000, grammar.PolicyR1, 16, cfg, nil, nil)
//
// With a fixed Seed the replicates are deterministic. The percentile method
// is the default; "bca" currently falls back to percentile, and
// "studentized" uses a normal-approximation critical value.
package bootstrap
