package stats

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseValues parses integers from a list of tokens. Each token may itself
// hold several values separated by commas or whitespace.
func ParseValues(tokens []string) ([]int, error) {
	var values []int
	for _, tok := range tokens {
		fields := strings.FieldsFunc(tok, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("invalid integer %q: %w", f, err)
			}
			values = append(values, v)
		}
	}
	return values, nil
}
