package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Finder holds the jump-to query typed while finding. It never filters rows;
// it only picks the row the cursor should jump to.
type Finder struct {
	Query string
}

// Insert appends text to the query.
func (f *Finder) Insert(text string) bool {
	if text == "" {
		return false
	}
	f.Query += text
	return true
}

// DeleteRuneBackward removes the last rune of the query.
func (f *Finder) DeleteRuneBackward() bool {
	runes := []rune(f.Query)
	if len(runes) == 0 {
		return false
	}
	f.Query = string(runes[:len(runes)-1])
	return true
}

// DeleteWordBackward removes the trailing word of the query.
func (f *Finder) DeleteWordBackward() bool {
	runes := []rune(f.Query)
	if len(runes) == 0 {
		return false
	}
	i := len(runes)
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	f.Query = string(runes[:i])
	return true
}

// Clear empties the query.
func (f *Finder) Clear() {
	f.Query = ""
}

// BestMatchIndex returns the index of the name that best matches query:
// exact (case-insensitive) beats prefix, prefix beats substring, and
// substring beats fuzzy rank. Ties go to the earliest name. It returns -1 when
// nothing matches.
func BestMatchIndex(names []string, query string) int {
	trimmed := strings.TrimSpace(query)
	if len(names) == 0 {
		return -1
	}
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, name := range names {
		if strings.EqualFold(name, trimmed) {
			return i
		}
	}
	for i, name := range names {
		if strings.HasPrefix(strings.ToLower(name), lower) {
			return i
		}
	}
	for i, name := range names {
		if strings.Contains(strings.ToLower(name), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(names) {
		return -1
	}
	return best.OriginalIndex
}
