package ptef

import (
	"math"

	"github.com/randalmurphal/ptef/duration"
	"github.com/randalmurphal/ptef/freq"
	"github.com/randalmurphal/ptef/grammar"
	"github.com/randalmurphal/ptef/lexicon"
	"github.com/randalmurphal/ptef/pauses"
)

// ci95Z is the two-sided 95% normal critical value.
const ci95Z = 1.96

// Option configures an estimation run.
type Option func(*options)

type options struct {
	policy           grammar.Policy
	blockSize        int64
	structuralPauses bool
	durationParams   duration.Params
	pauseParams      pauses.Params
	lexicon          *lexicon.Table
	withCI           bool
}

func defaultOptions() options {
	return options{
		policy:           grammar.PolicyR1,
		blockSize:        pauses.DefaultBlockSize,
		structuralPauses: true,
		durationParams:   duration.DefaultParams(),
		pauseParams:      pauses.DefaultParams(),
		lexicon:          lexicon.Default(),
		withCI:           true,
	}
}

// WithPolicy selects the grammar policy.
func WithPolicy(p grammar.Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithBlockSize sets the token block size for structural pauses.
func WithBlockSize(b int64) Option {
	return func(o *options) { o.blockSize = b }
}

// WithoutStructuralPauses disables structural pauses.
func WithoutStructuralPauses() Option {
	return func(o *options) { o.structuralPauses = false }
}

// WithDurationParams overrides the syllable duration parameters.
func WithDurationParams(p duration.Params) Option {
	return func(o *options) { o.durationParams = p }
}

// WithPauseParams overrides the pause parameters.
func WithPauseParams(p pauses.Params) Option {
	return func(o *options) { o.pauseParams = p }
}

// WithLexicon supplies a custom syllable table.
func WithLexicon(lex *lexicon.Table) Option {
	return func(o *options) { o.lexicon = lex }
}

// WithoutCI skips the confidence interval computation.
func WithoutCI() Option {
	return func(o *options) { o.withCI = false }
}

// Interval is a two-sided confidence interval in seconds.
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Details breaks an estimate into its components.
type Details struct {
	TotalSyllables   int64            `json:"total_syllables"`
	SyllableDuration float64          `json:"syllable_duration"`
	SyllableVariance float64          `json:"syllable_variance"`
	PauseCounts      pauses.Counts    `json:"pause_counts"`
	PauseDuration    float64          `json:"pause_duration"`
	PauseVariance    float64          `json:"pause_variance"`
	TokenCounts      freq.Frequencies `json:"token_counts"`
	Connectives      int64            `json:"connectives"`
}

// Result is a pronunciation-time estimate for counting 1 to N.
type Result struct {
	Mean    float64   `json:"mean"`
	Var     float64   `json:"var"`
	CI95    *Interval `json:"ci95,omitempty"`
	Details Details   `json:"details"`
}

// Estimate computes the expected time, in seconds, to speak every integer
// from 1 to n aloud in Brazilian Portuguese, with its variance and (unless
// disabled) a normal-approximation 95% confidence interval.
func Estimate(n int64, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tokenCounts, connectives, err := freq.CountRange(n, o.policy)
	if err != nil {
		return nil, err
	}

	syllables := syllableTotal(tokenCounts, o.lexicon)

	syllableDuration := o.durationParams.ExpectedFor(syllables)
	syllableVariance := o.durationParams.VarianceFor(syllables)

	pauseCounts := pauses.Count(tokenCounts, o.blockSize, o.structuralPauses, o.pauseParams)
	pauseDuration := pauses.ExpectedDuration(pauseCounts, o.pauseParams)
	pauseVariance := pauses.VarianceDuration(pauseCounts, o.pauseParams)

	result := &Result{
		Mean: syllableDuration + pauseDuration,
		Var:  syllableVariance + pauseVariance,
		Details: Details{
			TotalSyllables:   syllables,
			SyllableDuration: syllableDuration,
			SyllableVariance: syllableVariance,
			PauseCounts:      pauseCounts,
			PauseDuration:    pauseDuration,
			PauseVariance:    pauseVariance,
			TokenCounts:      tokenCounts,
			Connectives:      connectives,
		},
	}

	if o.withCI {
		std := math.Sqrt(result.Var)
		result.CI95 = &Interval{
			Lower: result.Mean - ci95Z*std,
			Upper: result.Mean + ci95Z*std,
		}
	}

	return result, nil
}

// EstimateBatch runs Estimate for each N and keys the results by N.
func EstimateBatch(ns []int64, opts ...Option) (map[int64]*Result, error) {
	results := make(map[int64]*Result, len(ns))
	for _, n := range ns {
		r, err := Estimate(n, opts...)
		if err != nil {
			return nil, err
		}
		results[n] = r
	}
	return results, nil
}

// TotalSyllables returns the total syllable count for speaking 1 to n.
// A nil lexicon uses the built-in default table.
func TotalSyllables(n int64, policy grammar.Policy, lex *lexicon.Table) (int64, error) {
	tokenCounts, _, err := freq.CountRange(n, policy)
	if err != nil {
		return 0, err
	}
	if lex == nil {
		lex = lexicon.Default()
	}
	return syllableTotal(tokenCounts, lex), nil
}

// syllableTotal sums syllables over a frequency map. Tokens without a
// lexicon entry are skipped, matching the lenient lookup the estimator has
// always used.
func syllableTotal(tokenCounts freq.Frequencies, lex *lexicon.Table) int64 {
	var total int64
	for token, count := range tokenCounts {
		s, err := lex.Syllables(token)
		if err != nil {
			continue
		}
		total += int64(s) * count
	}
	return total
}
