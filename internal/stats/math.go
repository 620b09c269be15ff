package stats

import (
	"fmt"
	"slices"
)

// NewSample returns a sorted copy of values. The input slice is not mutated.
func NewSample(values []int) Sample {
	temp := make([]int, len(values))
	copy(temp, values)
	slices.Sort(temp)
	return Sample(temp)
}

// Median returns the lower-middle element of the sample.
func (s Sample) Median() (int, error) {
	return ComputeMedian(s)
}

// Frequencies builds the frequency table of the sample.
func (s Sample) Frequencies() FrequencyTable {
	return ComputeFrequencyTable(s)
}

// ComputeMedian returns the median of an ascending-sorted slice.
// For an even length the lower of the two middle elements is returned, never their mean.
func ComputeMedian(sorted []int) (int, error) {
	n := len(sorted)
	if n == 0 {
		return 0, ErrEmptySample
	}
	if n%2 == 0 {
		return sorted[n/2-1], nil
	}
	return sorted[n/2], nil
}

// ComputeFrequencyTable counts the occurrences of every value.
func ComputeFrequencyTable(values []int) FrequencyTable {
	table := make(FrequencyTable, len(values))
	for _, v := range values {
		table[v]++
	}
	return table
}

// ComputeMode returns the key with the highest count. When several keys share
// the highest count the smallest of them wins, independent of map order.
func ComputeMode(table FrequencyTable) (int, error) {
	if len(table) == 0 {
		return 0, ErrEmptySample
	}

	first := true
	mode, best := 0, 0
	for k, c := range table {
		if first || c > best || (c == best && k < mode) {
			mode, best = k, c
			first = false
		}
	}
	return mode, nil
}

// Summarize sorts values and computes their median, frequency table and mode.
func Summarize(values []int) (Summary, error) {
	sample := NewSample(values)

	median, err := sample.Median()
	if err != nil {
		return Summary{}, fmt.Errorf("median: %w", err)
	}

	table := sample.Frequencies()
	mode, err := ComputeMode(table)
	if err != nil {
		return Summary{}, fmt.Errorf("mode: %w", err)
	}

	return Summary{
		Median:      median,
		Mode:        mode,
		Sample:      sample,
		Frequencies: table,
	}, nil
}
