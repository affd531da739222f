package fuzzy

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// LevenshteinDistance calculates the edit distance between two strings
// after normalization (case, whitespace and diacritics).
func LevenshteinDistance(s1, s2 string) int {
	return distance([]rune(normalizeString(s1)), []rune(normalizeString(s2)))
}

func distance(r1, r2 []rune) int {
	m, n := len(r1), len(r2)
	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	// Two rolling rows instead of the full matrix
	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// Threshold returns the typo tolerance for a query of the given length.
func Threshold(query string) int {
	n := len([]rune(normalizeString(query)))
	switch {
	case n <= 3:
		return 1
	case n >= 8:
		return 3
	default:
		return 2
	}
}

// FuzzyMatch checks if query fuzzy-matches text within a given threshold.
// threshold is the maximum allowed edit distance against any single word.
func FuzzyMatch(query, text string, threshold int) bool {
	query = normalizeString(query)
	text = normalizeString(text)

	if query == "" {
		return true
	}
	if strings.Contains(text, query) {
		return true
	}

	q := []rune(query)
	for _, word := range strings.Fields(text) {
		if strings.HasPrefix(word, query) {
			return true
		}
		if distance(q, []rune(word)) <= threshold {
			return true
		}
	}

	// Short texts are compared as a whole, e.g. a two-word title
	if len(text) < 50 {
		maxDistance := threshold + len(q)/5
		if distance(q, []rune(text)) <= maxDistance {
			return true
		}
	}

	return false
}

// Match reports whether query matches any of the given fields, using the
// default threshold for the query length.
func Match(query string, fields ...string) bool {
	threshold := Threshold(query)
	for _, f := range fields {
		if FuzzyMatch(query, f, threshold) {
			return true
		}
	}
	return false
}

// Score rates how well text matches query. Higher is better, 0 means no match.
func Score(query, text string) float64 {
	query = normalizeString(query)
	text = normalizeString(text)
	if query == "" || text == "" {
		return 0
	}

	score := 0.0
	if strings.Contains(text, query) {
		score += 100
		if containsWord(text, query) {
			score += 50
		}
		return score
	}

	q := []rune(query)
	for _, word := range strings.Fields(text) {
		if d := distance(q, []rune(word)); d <= 2 {
			score += 50 - float64(d)*15
		}
		if strings.HasPrefix(word, query) {
			score += 40
		}
	}
	return score
}

// normalizeString lowercases, collapses whitespace and strips diacritics.
func normalizeString(s string) string {
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	// Transformers are stateful, so build one per call.
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(folder, s); err == nil {
		s = folded
	}
	// đ has no decomposition
	return strings.ReplaceAll(s, "đ", "d")
}

func containsWord(text, query string) bool {
	for _, word := range strings.Fields(text) {
		if word == query {
			return true
		}
	}
	return false
}
