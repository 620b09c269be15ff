package stats

import "errors"

// ErrEmptySample is returned when a median or mode is requested for no data.
var ErrEmptySample = errors.New("no median or mode defined for an empty sample")

// Sample is an ascending-sorted sequence of integers.
type Sample []int

// FrequencyTable maps a value to the number of times it occurs in a sample.
type FrequencyTable map[int]int

// Summary is the result of one run of the summarizer.
type Summary struct {
	Median      int            `json:"median"`
	Mode        int            `json:"mode"`
	Sample      Sample         `json:"sample"`
	Frequencies FrequencyTable `json:"frequencies"`
}
