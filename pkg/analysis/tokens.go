package analysis

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/agentstation/starlens/pkg/stars"
)

// words tokenizes descriptions and counts token occurrences across the
// record set. A record counts as contributing only when at least one of its
// tokens survives filtering.
func (a *Analyzer) words(records []stars.Record) ([]CategoryCount, int) {
	counts := make(map[string]int)
	contributing := 0
	for _, rec := range records {
		tokens := a.tokenize(rec.Description)
		if len(tokens) == 0 {
			continue
		}
		contributing++
		for _, tok := range tokens {
			counts[tok]++
		}
	}
	return Top(sortCategories(counts), a.maxVocabulary), contributing
}

// tokenize lowercases, folds diacritics, splits on anything that is not a
// letter or digit, and drops stop words and tokens shorter than the
// configured minimum.
func (a *Analyzer) tokenize(text string) []string {
	if text == "" {
		return nil
	}

	folded := fold(strings.ToLower(text))
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if utf8.RuneCountInString(tok) < a.minWordLength {
			continue
		}
		if _, stop := a.stopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// foldTransformer strips combining marks so accented and plain forms of a
// word count together ("café" and "cafe").
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold removes diacritics, falling back to the input if the transform fails.
func fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return folded
}
