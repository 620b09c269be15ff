// Package text holds the word-level exercises: pig latin and word frequency.
package text

import (
	"strings"
	"unicode/utf8"
)

const vowels = "aeiouAEIOU"

// PigLatin converts a single word. Words starting with a vowel get "-hay"
// appended; otherwise the first letter moves to the end followed by "ay"
// (first -> irst-fay).
func PigLatin(word string) string {
	if word == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(word)
	if strings.ContainsRune(vowels, first) {
		return word + "-hay"
	}
	return word[size:] + "-" + string(first) + "ay"
}

// PigLatinAll converts every word in order.
func PigLatinAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, PigLatin(w))
	}
	return out
}
