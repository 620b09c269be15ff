package stats

import (
	"errors"
	"slices"
	"testing"
)

func TestComputeMedian(t *testing.T) {
	tests := []struct {
		name     string
		values   []int
		expected int
	}{
		{"SingleItem", []int{5}, 5},
		{"OddCount", []int{1, 2, 3, 4, 5}, 3},
		{"EvenCountLowerMiddle", []int{1, 2, 3, 4}, 2},
		{"TwoItems", []int{3, 5}, 3},
		{"Negatives", []int{-7, -3, -1}, -3},
		{"Reference", []int{1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 3, 3, 4}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeMedian(tt.values)
			if err != nil {
				t.Fatalf("ComputeMedian() unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ComputeMedian() = %v, want %v", got, tt.expected)
			}
			if !slices.Contains(tt.values, got) {
				t.Errorf("ComputeMedian() = %v, not an element of %v", got, tt.values)
			}
		})
	}
}

func TestComputeMedian_Empty(t *testing.T) {
	if _, err := ComputeMedian(nil); !errors.Is(err, ErrEmptySample) {
		t.Errorf("ComputeMedian(nil) error = %v, want %v", err, ErrEmptySample)
	}
	if _, err := ComputeMedian([]int{}); !errors.Is(err, ErrEmptySample) {
		t.Errorf("ComputeMedian([]) error = %v, want %v", err, ErrEmptySample)
	}
}

func TestNewSample_DoesNotMutate(t *testing.T) {
	values := []int{5, 3}
	sample := NewSample(values)

	if !slices.Equal(values, []int{5, 3}) {
		t.Errorf("NewSample mutated its input: %v", values)
	}
	if !slices.Equal([]int(sample), []int{3, 5}) {
		t.Errorf("NewSample() = %v, want [3 5]", sample)
	}

	median, err := sample.Median()
	if err != nil || median != 3 {
		t.Errorf("Median() = %v, %v; want 3, nil", median, err)
	}
}

func TestComputeFrequencyTable(t *testing.T) {
	values := []int{1, 1, 2, 4, 3, 2, 3, 1, 1, 3, 3, 2, 3}
	table := ComputeFrequencyTable(values)

	expected := FrequencyTable{1: 4, 2: 3, 3: 5, 4: 1}
	if len(table) != len(expected) {
		t.Fatalf("expected %d keys, got %d (%v)", len(expected), len(table), table)
	}
	for k, want := range expected {
		if table[k] != want {
			t.Errorf("table[%d] = %d, want %d", k, table[k], want)
		}
	}

	sum := 0
	for _, c := range table {
		sum += c
	}
	if sum != len(values) {
		t.Errorf("sum of counts = %d, want %d", sum, len(values))
	}

	if got := ComputeFrequencyTable(nil); len(got) != 0 {
		t.Errorf("ComputeFrequencyTable(nil) = %v, want empty", got)
	}
}

func TestComputeMode(t *testing.T) {
	tests := []struct {
		name     string
		table    FrequencyTable
		expected int
	}{
		{"UniqueMax", FrequencyTable{1: 4, 2: 3, 3: 5, 4: 1}, 3},
		{"SingleKey", FrequencyTable{9: 1}, 9},
		{"TieSmallestKey", FrequencyTable{7: 2, 3: 2, 5: 1}, 3},
		{"AllTied", FrequencyTable{4: 1, -2: 1, 0: 1}, -2},
		{"ZeroIsValidMode", FrequencyTable{0: 3, 1: 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Repeat to catch any dependence on map iteration order.
			for i := 0; i < 20; i++ {
				got, err := ComputeMode(tt.table)
				if err != nil {
					t.Fatalf("ComputeMode() unexpected error: %v", err)
				}
				if got != tt.expected {
					t.Fatalf("ComputeMode() = %v, want %v", got, tt.expected)
				}
			}
		})
	}
}

func TestComputeMode_Empty(t *testing.T) {
	if _, err := ComputeMode(FrequencyTable{}); !errors.Is(err, ErrEmptySample) {
		t.Errorf("ComputeMode({}) error = %v, want %v", err, ErrEmptySample)
	}
}

func TestSummarize(t *testing.T) {
	summary, err := Summarize([]int{1, 1, 2, 4, 3, 2, 3, 1, 1, 3, 3, 2, 3})
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if summary.Median != 2 {
		t.Errorf("Median = %d, want 2", summary.Median)
	}
	if summary.Mode != 3 {
		t.Errorf("Mode = %d, want 3", summary.Mode)
	}
	wantSample := []int{1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 3, 3, 4}
	if !slices.Equal([]int(summary.Sample), wantSample) {
		t.Errorf("Sample = %v, want %v", summary.Sample, wantSample)
	}
	if summary.Frequencies[summary.Mode] != 5 {
		t.Errorf("mode count = %d, want 5", summary.Frequencies[summary.Mode])
	}

	if _, err := Summarize(nil); !errors.Is(err, ErrEmptySample) {
		t.Errorf("Summarize(nil) error = %v, want %v", err, ErrEmptySample)
	}
}
