package text

import (
	"cmp"
	"slices"
	"strings"
)

// WordCount is a single entry of a word-frequency report.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// CountWords counts the whitespace-separated words of s.
func CountWords(s string) map[string]int {
	counts := make(map[string]int)
	for _, w := range strings.Fields(s) {
		counts[w]++
	}
	return counts
}

// RankWords orders counts by count descending, then word ascending.
func RankWords(counts map[string]int) []WordCount {
	ranked := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		ranked = append(ranked, WordCount{Word: w, Count: c})
	}
	slices.SortFunc(ranked, func(a, b WordCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Word, b.Word)
	})
	return ranked
}
