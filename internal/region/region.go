package region

import (
	"fmt"
	"unicode/utf8"
)

// Counting selects how the characters of a line are counted when
// measuring regions.
type Counting string

const (
	// CountRunes measures lines in Unicode code points.
	CountRunes Counting = "runes"
	// CountBytes measures lines in raw bytes, matching the single-byte
	// behavior of the tool's C lineage.
	CountBytes Counting = "bytes"
)

// ParseCounting converts a configuration value into a counting policy.
func ParseCounting(s string) (Counting, error) {
	switch Counting(s) {
	case CountRunes:
		return CountRunes, nil
	case CountBytes:
		return CountBytes, nil
	default:
		return "", fmt.Errorf("unknown counting policy %q (expected %q or %q)", s, CountRunes, CountBytes)
	}
}

// Valid reports whether the policy names a known counting mode.
func (c Counting) Valid() bool {
	return c == CountRunes || c == CountBytes
}

func (c Counting) count(line string) int {
	if c == CountBytes {
		return len(line)
	}
	return utf8.RuneCountInString(line)
}

// Split partitions lines into the regions separated by delimiter lines.
// The delimiter lines themselves belong to no region, and consecutive
// delimiters produce empty regions. A region is only emitted when its
// closing delimiter appears, so lines after the final delimiter are
// dropped; inputs are expected to end with one.
func Split(lines []string, delimiter string) [][]string {
	var regions [][]string
	var current []string
	for _, line := range lines {
		if line == delimiter {
			regions = append(regions, current)
			current = nil
		} else {
			current = append(current, line)
		}
	}
	return regions
}

// Trailing returns the lines after the final delimiter, the ones Split
// drops. Callers surface them so a missing end delimiter is visible
// instead of silently shrinking the document.
func Trailing(lines []string, delimiter string) []string {
	last := -1
	for i, line := range lines {
		if line == delimiter {
			last = i
		}
	}
	return lines[last+1:]
}

// Length measures one region as its line count plus the counted size of
// every line.
func Length(lines []string, policy Counting) int {
	total := len(lines)
	for _, line := range lines {
		total += policy.count(line)
	}
	return total
}

// Lengths measures every region in order.
func Lengths(regions [][]string, policy Counting) []int {
	out := make([]int, len(regions))
	for i, r := range regions {
		out[i] = Length(r, policy)
	}
	return out
}
