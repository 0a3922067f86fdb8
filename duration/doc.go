// Package duration models syllable pronunciation time with a lognormal
// microduration distribution.
//
// A single syllable's duration is lognormal with parameters Mu and Sigma,
// scaled by a multiplicative speaker effect. The closed forms follow from
// the lognormal moments:
//
//	E[d]   = exp(mu + sigma^2/2) * speaker
//	Var[d] = exp(2*mu + sigma^2) * (exp(sigma^2) - 1) * speaker^2
//
// ExpectedFor and VarianceFor extend these to a run of syllables, treating
// syllables as independent and applying a linear fatigue inflation to the
// expectation.
//
// ContextModel is the conditional variant: the log-mean becomes a linear
// function mu(x) of contextual features (position, recent complexity,
// connective status, prosodic boundary, stress), so tokens in different
// contexts get different expected durations.
package duration
