package analysis

import (
	"sort"
	"strings"

	"github.com/agentstation/starlens/pkg/stars"
)

// languages counts records per primary language. Records without one are
// excluded from this summary only, never dropped globally.
func (a *Analyzer) languages(records []stars.Record) ([]CategoryCount, int) {
	counts := make(map[string]int)
	contributing := 0
	for _, rec := range records {
		if !rec.HasLanguage() {
			continue
		}
		counts[rec.Language]++
		contributing++
	}
	return sortCategories(counts), contributing
}

// topics counts whole topic tags. Tags are already tokens, and splitting
// "machine-learning" would destroy them, so they are only lowercased,
// trimmed, and de-duplicated within each record before counting.
func (a *Analyzer) topics(records []stars.Record) ([]CategoryCount, int) {
	counts := make(map[string]int)
	contributing := 0
	for _, rec := range records {
		seen := make(map[string]struct{}, len(rec.Topics))
		for _, topic := range rec.Topics {
			tag := strings.ToLower(strings.TrimSpace(topic))
			if tag == "" {
				continue
			}
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			counts[tag]++
		}
		if len(seen) > 0 {
			contributing++
		}
	}
	return Top(sortCategories(counts), a.maxVocabulary), contributing
}

// sortCategories orders a count map by descending count, ties broken
// alphabetically so equal inputs always produce equal output.
func sortCategories(counts map[string]int) []CategoryCount {
	if len(counts) == 0 {
		return nil
	}
	categories := make([]CategoryCount, 0, len(counts))
	for name, count := range counts {
		categories = append(categories, CategoryCount{Name: name, Count: count})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Count != categories[j].Count {
			return categories[i].Count > categories[j].Count
		}
		return categories[i].Name < categories[j].Name
	})
	return categories
}
