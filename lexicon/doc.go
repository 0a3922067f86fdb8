// Package lexicon maps spoken-word tokens to syllable counts.
//
// The table is an explicit, immutable value passed to whatever needs it —
// there is no lazily initialized global. Default returns a built-in table
// covering every token the grammar can emit:
//
//	lex := lexicon.Default()
//	n, err := lex.Syllables("quatorze") // 3
//
// External tables load from two-column CSV files (token,syllables):
//
//	lex, err := lexicon.LoadCSV("bp_number_tokens_syllables.csv")
//
// Lookups for tokens outside the table fail with ErrUnknownToken.
package lexicon
