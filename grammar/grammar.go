package grammar

import "fmt"

// Policy selects a grammar variant. R1 is the only defined policy; the
// parameter exists so future variants can change connective rules without
// changing the API.
type Policy string

// PolicyR1 is the standard Brazilian Portuguese cardinal reading.
const PolicyR1 Policy = "R1"

// MaxNumber is the largest integer with a defined lexical form
// (999 billion, 999 million, 999 thousand, 999).
const MaxNumber int64 = 999_999_999_999

// Connective is the single connective token inserted between a magnitude
// component and its nonzero remainder.
const Connective = "e"

// Zero is the verbalization of 0.
const Zero = "zero"

// units covers the irregular atomic forms 1-19. Index 0 is unused.
var units = [20]string{
	"", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove",
	"dez", "onze", "doze", "treze", "quatorze", "quinze", "dezesseis",
	"dezessete", "dezoito", "dezenove",
}

// tens covers the multiples of ten from 20 to 90. Indexes 0 and 1 are unused.
var tens = [10]string{
	"", "", "vinte", "trinta", "quarenta", "cinquenta",
	"sessenta", "setenta", "oitenta", "noventa",
}

// hundredsMultiples covers 200-900. Indexes 0 and 1 are unused; 100-199 go
// through the irregular cem/cento split instead.
var hundredsMultiples = [10]string{
	"", "", "duzentos", "trezentos", "quatrocentos",
	"quinhentos", "seiscentos", "setecentos", "oitocentos", "novecentos",
}

// band is a closed set of magnitude bands. bandOf is total over
// [1, MaxNumber], so compose can dispatch exhaustively.
type band int

const (
	bandUnits band = iota // 1-19
	bandTens              // 20-99
	bandHundreds          // 100-999
	bandThousands         // 1 000 - 999 999
	bandMillions          // 1 000 000 - 999 999 999
	bandBillions          // 1 000 000 000 - 999 999 999 999
)

// scale describes how a thousands-and-above band composes. bare marks the
// thousands idiosyncrasy: a multiplier of 1 emits the scale word alone.
type scale struct {
	factor   int64
	singular string
	plural   string
	bare     bool
}

var scales = map[band]scale{
	bandThousands: {factor: 1_000, singular: "mil", plural: "mil", bare: true},
	bandMillions:  {factor: 1_000_000, singular: "milhão", plural: "milhões"},
	bandBillions:  {factor: 1_000_000_000, singular: "bilhão", plural: "bilhões"},
}

// Verbalize returns the ordered word tokens for n under the given policy.
//
// It fails with ErrNegativeNumber for n < 0, ErrUnsupportedPolicy for any
// policy other than R1, and ErrOutOfRange for n > MaxNumber. The result is
// never empty: Verbalize(0) is ["zero"].
func Verbalize(n int64, policy Policy) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeNumber, n)
	}
	if policy != PolicyR1 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPolicy, policy)
	}
	if n > MaxNumber {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	if n == 0 {
		return []string{Zero}, nil
	}
	return compose(n), nil
}

// bandOf classifies n, which must be in [1, MaxNumber].
func bandOf(n int64) band {
	switch {
	case n < 20:
		return bandUnits
	case n < 100:
		return bandTens
	case n < 1_000:
		return bandHundreds
	case n < 1_000_000:
		return bandThousands
	case n < 1_000_000_000:
		return bandMillions
	default:
		return bandBillions
	}
}

// compose builds the token sequence for n in [1, MaxNumber]. Each band
// recurses into a lower band for its remainder, so any single call appends
// at most one connective of its own.
func compose(n int64) []string {
	switch b := bandOf(n); b {
	case bandUnits:
		return []string{units[n]}
	case bandTens:
		return composeTens(n)
	case bandHundreds:
		return composeHundreds(n)
	default:
		return composeScaled(n, scales[b])
	}
}

func composeTens(n int64) []string {
	toks := []string{tens[n/10]}
	if unit := n % 10; unit > 0 {
		toks = append(toks, Connective, units[unit])
	}
	return toks
}

func composeHundreds(n int64) []string {
	// 100 exactly is the irregular "cem"; everything else in 100-199
	// uses "cento".
	if n == 100 {
		return []string{"cem"}
	}
	var toks []string
	if n < 200 {
		toks = []string{"cento"}
	} else {
		toks = []string{hundredsMultiples[n/100]}
	}
	if rem := n % 100; rem > 0 {
		toks = append(toks, Connective)
		toks = append(toks, compose(rem)...)
	}
	return toks
}

func composeScaled(n int64, sc scale) []string {
	count := n / sc.factor
	var toks []string
	switch {
	case count == 1 && sc.bare:
		toks = []string{sc.singular}
	case count == 1:
		toks = []string{"um", sc.singular}
	default:
		toks = append(compose(count), sc.plural)
	}
	// The connective precedes any nonzero remainder here, regardless of
	// the remainder's magnitude.
	if rem := n % sc.factor; rem > 0 {
		toks = append(toks, Connective)
		toks = append(toks, compose(rem)...)
	}
	return toks
}
