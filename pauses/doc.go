// Package pauses estimates prosodic pause counts and durations for spoken
// number sequences.
//
// Three pause classes exist: weak pauses after a fraction of connectives,
// strong pauses after magnitude-word boundaries ("mil", "milhão", "milhões",
// "bilhão", "bilhões"), and structural pauses between fixed-size blocks of
// tokens. Counts derive from an aggregate token frequency map, not from
// individual utterances, so they compose with freq.CountRange directly.
package pauses
