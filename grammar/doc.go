// Package grammar converts non-negative integers into their Brazilian
// Portuguese spoken-word form.
//
// The only defined grammar policy is R1, which produces the cardinal reading
// with the "e" connective inserted between a magnitude component and any
// nonzero remainder:
//
//	words, _ := grammar.Verbalize(2001, grammar.PolicyR1)
//	// ["dois", "mil", "e", "um"]
//
// Verbalize is a pure function: it keeps no state, performs no I/O, and is
// safe to call concurrently.
//
// # Band rules
//
// Numbers decompose recursively by magnitude band. The irregular forms are
// worth calling out:
//
//   - 1-19 are atomic ("onze", "quatorze", ...), never tens+units compounds
//   - 100 exactly is "cem"; 101-199 use "cento"
//   - a thousands component of 1 yields "mil" alone, never "um mil"
//   - a millions or billions component of 1 yields the singular
//     ("um milhão"), anything larger the plural ("dois milhões")
//   - "e" precedes any nonzero remainder at the thousands scale and above,
//     regardless of the remainder's own magnitude
//
// Numbers at or above 10^12 have no defined lexical form and fail with
// ErrOutOfRange.
package grammar
