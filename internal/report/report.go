// Package report renders program results to a writer.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"exkit/internal/stats"
	"exkit/internal/text"
)

// Report is the combined output of the three programs.
type Report struct {
	Summary   *stats.Summary   `json:"summary,omitempty"`
	PigLatin  []string         `json:"pig_latin,omitempty"`
	WordCount []text.WordCount `json:"word_frequency,omitempty"`
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Summary writes the median and mode lines followed by a dump of the sample
// and its frequency table.
func Summary(w io.Writer, s stats.Summary) error {
	_, err := fmt.Fprintf(w, "median: %d\nmode: %d\n%v %v\n", s.Median, s.Mode, []int(s.Sample), map[int]int(s.Frequencies))
	return err
}

// PigLatin writes one converted word per line.
func PigLatin(w io.Writer, words []string) error {
	for _, word := range words {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}
	return nil
}

// WordFrequency writes one "word: count" line per entry.
func WordFrequency(w io.Writer, counts []text.WordCount) error {
	for _, wc := range counts {
		if _, err := fmt.Fprintf(w, "%s: %d\n", wc.Word, wc.Count); err != nil {
			return err
		}
	}
	return nil
}

// Text writes every populated section of r.
func Text(w io.Writer, r Report) error {
	if r.Summary != nil {
		if err := Summary(w, *r.Summary); err != nil {
			return err
		}
	}
	if r.PigLatin != nil {
		if err := PigLatin(w, r.PigLatin); err != nil {
			return err
		}
	}
	if r.WordCount != nil {
		if err := WordFrequency(w, r.WordCount); err != nil {
			return err
		}
	}
	return nil
}
