package lexicon

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownToken indicates a token with no entry in the table.
var ErrUnknownToken = errors.New("token not found in lexicon")

// Table is a read-only token → syllable-count mapping.
type Table struct {
	syllables map[string]int
}

// defaultSyllables covers the full closed vocabulary the grammar can emit.
var defaultSyllables = map[string]int{
	"zero": 2,
	"um":   1, "dois": 1, "três": 1, "quatro": 2, "cinco": 2,
	"seis": 1, "sete": 2, "oito": 2, "nove": 2, "dez": 1,
	"onze": 2, "doze": 2, "treze": 2, "quatorze": 3, "quinze": 2,
	"dezesseis": 4, "dezessete": 4, "dezoito": 3, "dezenove": 4,
	"vinte": 2, "trinta": 2, "quarenta": 3, "cinquenta": 3,
	"sessenta": 3, "setenta": 3, "oitenta": 3, "noventa": 3,
	"cem": 1, "cento": 2, "duzentos": 3, "trezentos": 3,
	"quatrocentos": 4, "quinhentos": 3, "seiscentos": 3,
	"setecentos": 4, "oitocentos": 4, "novecentos": 4,
	"mil": 1, "milhão": 2, "milhões": 2,
	"bilhão": 2, "bilhões": 2,
	"e": 1,
}

// New builds a table from the given mapping. The mapping is copied, so the
// caller's map can be mutated freely afterwards.
func New(syllables map[string]int) *Table {
	m := make(map[string]int, len(syllables))
	for token, count := range syllables {
		m[token] = count
	}
	return &Table{syllables: m}
}

// Default returns the built-in Brazilian Portuguese number lexicon.
func Default() *Table {
	return New(defaultSyllables)
}

// LoadCSV reads a table from a CSV file with a "token,syllables" header.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse lexicon csv: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("lexicon csv is empty")
	}

	syllables := make(map[string]int, len(records))
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, fmt.Errorf("lexicon csv line %d: expected 2 columns, got %d", i+1, len(rec))
		}
		token := strings.TrimSpace(rec[0])
		// Skip the header row.
		if i == 0 && strings.EqualFold(token, "token") {
			continue
		}
		count, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("lexicon csv line %d: %w", i+1, err)
		}
		if count <= 0 {
			return nil, fmt.Errorf("lexicon csv line %d: syllable count must be positive", i+1)
		}
		syllables[token] = count
	}

	return &Table{syllables: syllables}, nil
}

// Syllables returns the syllable count for token.
func (t *Table) Syllables(token string) (int, error) {
	count, ok := t.syllables[token]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownToken, token)
	}
	return count, nil
}

// Has reports whether token has an entry.
func (t *Table) Has(token string) bool {
	_, ok := t.syllables[token]
	return ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.syllables)
}

// Tokens returns all tokens in the table, sorted.
func (t *Table) Tokens() []string {
	tokens := make([]string, 0, len(t.syllables))
	for token := range t.syllables {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// Validate reports, for each given token, whether it resolves in the table.
func (t *Table) Validate(tokens []string) map[string]bool {
	out := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		out[token] = t.Has(token)
	}
	return out
}
