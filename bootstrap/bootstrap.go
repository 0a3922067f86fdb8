package bootstrap

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/randalmurphal/ptef/duration"
	"github.com/randalmurphal/ptef/freq"
	"github.com/randalmurphal/ptef/grammar"
	"github.com/randalmurphal/ptef/lexicon"
	"github.com/randalmurphal/ptef/pauses"
)

// ErrUnknownMethod indicates an interval method outside the defined set.
var ErrUnknownMethod = errors.New("unknown bootstrap method")

// Method selects how intervals are cut from the replicate distribution.
type Method string

const (
	// MethodPercentile cuts the empirical percentiles directly.
	MethodPercentile Method = "percentile"

	// MethodBCa is the bias-corrected accelerated interval. It currently
	// falls back to the percentile method.
	MethodBCa Method = "bca"

	// MethodStudentized centers a normal-approximation interval on the
	// replicate mean.
	MethodStudentized Method = "studentized"
)

// Config controls a bootstrap run.
type Config struct {
	// Samples is the number of bootstrap replicates.
	Samples int `yaml:"samples" toml:"samples" json:"samples"`

	// Confidence is the two-sided interval coverage, e.g. 0.95.
	Confidence float64 `yaml:"confidence" toml:"confidence" json:"confidence"`

	// Seed fixes the random source for reproducible runs. Zero means a
	// nondeterministic seed.
	Seed uint64 `yaml:"seed" toml:"seed" json:"seed"`

	// Method selects the interval construction.
	Method Method `yaml:"method" toml:"method" json:"method"`
}

// DefaultConfig returns 1000 percentile-method replicates at 95% coverage.
func DefaultConfig() Config {
	return Config{
		Samples:    1000,
		Confidence: 0.95,
		Method:     MethodPercentile,
	}
}

// logNormalParams are per-class lognormal parameters for pause durations.
type logNormalParams struct {
	mu, sigma float64
}

// Pause distributions, chosen so the class means land near the closed-form
// pause durations (0.1s weak, 0.3s strong, 0.2s structural).
var pauseDists = map[string]logNormalParams{
	"weak":       {mu: -2.3, sigma: 0.5},
	"strong":     {mu: -1.2, sigma: 0.4},
	"structural": {mu: -1.6, sigma: 0.3},
}

// Estimator draws bootstrap replicates from a private random source.
type Estimator struct {
	cfg Config
	rng *rand.Rand
}

// NewEstimator creates an estimator. A zero Samples or Confidence falls
// back to the defaults.
func NewEstimator(cfg Config) *Estimator {
	def := DefaultConfig()
	if cfg.Samples <= 0 {
		cfg.Samples = def.Samples
	}
	if cfg.Confidence <= 0 || cfg.Confidence >= 1 {
		cfg.Confidence = def.Confidence
	}
	if cfg.Method == "" {
		cfg.Method = def.Method
	}

	seed1, seed2 := cfg.Seed, cfg.Seed
	if cfg.Seed == 0 {
		seed1, seed2 = rand.Uint64(), rand.Uint64()
	}
	return &Estimator{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed1, seed2)),
	}
}

// Config returns the effective configuration.
func (e *Estimator) Config() Config {
	return e.cfg
}

// sampleLogNormal draws one lognormal value.
func (e *Estimator) sampleLogNormal(mu, sigma float64) float64 {
	return math.Exp(mu + sigma*e.rng.NormFloat64())
}

// SyllableDurations draws Samples replicates of the total syllable time for
// the given token frequencies. Connectives and tokens without a lexicon
// entry are skipped, mirroring the closed-form estimator. A nil model uses
// the unconditional default parameters.
//
// Tokens are consumed in sorted order so the RNG stream, and therefore the
// replicates, are identical for identical seeds.
func (e *Estimator) SyllableDurations(freqs freq.Frequencies, lex *lexicon.Table, model *duration.ContextModel) []float64 {
	mu, sigma := duration.DefaultMu, duration.DefaultSigma
	if model != nil {
		mu, sigma = model.MuBase, model.Sigma
	}

	tokens := make([]string, 0, len(freqs))
	for token := range freqs {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	totals := make([]float64, e.cfg.Samples)
	for i := range totals {
		var total float64
		for _, token := range tokens {
			if token == grammar.Connective {
				continue
			}
			s, err := lex.Syllables(token)
			if err != nil {
				continue
			}
			for range freqs[token] {
				total += float64(s) * e.sampleLogNormal(mu, sigma)
			}
		}
		totals[i] = total
	}
	return totals
}

// PauseDurations draws Samples replicates of the total pause time.
func (e *Estimator) PauseDurations(counts pauses.Counts) []float64 {
	totals := make([]float64, e.cfg.Samples)
	for i := range totals {
		var total float64
		total += e.samplePauseClass("weak", counts.Weak)
		total += e.samplePauseClass("strong", counts.Strong)
		total += e.samplePauseClass("structural", counts.Structural)
		totals[i] = total
	}
	return totals
}

func (e *Estimator) samplePauseClass(class string, n int64) float64 {
	if n <= 0 {
		return 0
	}
	p := pauseDists[class]
	var total float64
	for range n {
		total += e.sampleLogNormal(p.mu, p.sigma)
	}
	return total
}

// TotalDurations draws Samples replicates of syllable plus pause time.
func (e *Estimator) TotalDurations(freqs freq.Frequencies, counts pauses.Counts, lex *lexicon.Table, model *duration.ContextModel) []float64 {
	syllables := e.SyllableDurations(freqs, lex, model)
	pauseTotals := e.PauseDurations(counts)

	totals := make([]float64, len(syllables))
	for i := range totals {
		totals[i] = syllables[i] + pauseTotals[i]
	}
	return totals
}

// Interval is a two-sided confidence interval over the replicates.
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// ComputeInterval cuts an interval from the replicates using the
// configured method.
func (e *Estimator) ComputeInterval(samples []float64) (Interval, error) {
	switch e.cfg.Method {
	case MethodPercentile, MethodBCa:
		return e.percentileInterval(samples), nil
	case MethodStudentized:
		return e.studentizedInterval(samples), nil
	default:
		return Interval{}, fmt.Errorf("%w: %q", ErrUnknownMethod, e.cfg.Method)
	}
}

func (e *Estimator) percentileInterval(samples []float64) Interval {
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	alpha := 1 - e.cfg.Confidence
	return Interval{
		Lower: percentile(sorted, alpha/2*100),
		Upper: percentile(sorted, (1-alpha/2)*100),
	}
}

func (e *Estimator) studentizedInterval(samples []float64) Interval {
	m := mean(samples)
	sd := math.Sqrt(sampleVariance(samples))
	z := math.Sqrt2 * math.Erfinv(e.cfg.Confidence)
	margin := z * sd / math.Sqrt(float64(len(samples)))
	return Interval{Lower: m - margin, Upper: m + margin}
}

// percentile linearly interpolates the p-th percentile of sorted data.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func mean(samples []float64) float64 {
	var sum float64
	for _, s := range samples {
		sum += s
	}
	return sum / float64(len(samples))
}

// sampleVariance is the unbiased (n-1 denominator) variance.
func sampleVariance(samples []float64) float64 {
	if len(samples) < 2 {
		return 0
	}
	m := mean(samples)
	var sum float64
	for _, s := range samples {
		d := s - m
		sum += d * d
	}
	return sum / float64(len(samples)-1)
}

// Result summarizes a bootstrap estimation run.
type Result struct {
	Mean     float64   `json:"mean"`
	Var      float64   `json:"var"`
	CI       Interval  `json:"ci"`
	Method   Method    `json:"method"`
	Samples  int       `json:"samples"`
	Replicas []float64 `json:"-"`
}

// Estimate draws bootstrap replicates for counting 1 to n and summarizes
// them. A nil lexicon uses the default table; a nil model uses the
// unconditional duration parameters.
func Estimate(n int64, policy grammar.Policy, blockSize int64, cfg Config, lex *lexicon.Table, model *duration.ContextModel) (*Result, error) {
	freqs, _, err := freq.CountRange(n, policy)
	if err != nil {
		return nil, err
	}
	if lex == nil {
		lex = lexicon.Default()
	}

	counts := pauses.Count(freqs, blockSize, true, pauses.DefaultParams())

	est := NewEstimator(cfg)
	replicas := est.TotalDurations(freqs, counts, lex, model)

	ci, err := est.ComputeInterval(replicas)
	if err != nil {
		return nil, err
	}

	return &Result{
		Mean:     mean(replicas),
		Var:      sampleVariance(replicas),
		CI:       ci,
		Method:   est.cfg.Method,
		Samples:  est.cfg.Samples,
		Replicas: replicas,
	}, nil
}
