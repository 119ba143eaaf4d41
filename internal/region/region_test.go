package region

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		delimiter string
		want      [][]string
	}{
		{
			name:      "empty input",
			lines:     nil,
			delimiter: ".PARA",
			want:      nil,
		},
		{
			name:      "single region",
			lines:     []string{"one", "two", ".PARA"},
			delimiter: ".PARA",
			want:      [][]string{{"one", "two"}},
		},
		{
			name:      "two regions",
			lines:     []string{"a", ".PARA", "b", "c", ".PARA"},
			delimiter: ".PARA",
			want:      [][]string{{"a"}, {"b", "c"}},
		},
		{
			name:      "consecutive delimiters produce empty region",
			lines:     []string{"a", ".PARA", ".PARA"},
			delimiter: ".PARA",
			want:      [][]string{{"a"}, nil},
		},
		{
			name:      "leading delimiter produces empty region",
			lines:     []string{".PARA", "a", ".PARA"},
			delimiter: ".PARA",
			want:      [][]string{nil, {"a"}},
		},
		{
			name:      "content after final delimiter is dropped",
			lines:     []string{"a", ".PARA", "stranded"},
			delimiter: ".PARA",
			want:      [][]string{{"a"}},
		},
		{
			name:      "no delimiter drops everything",
			lines:     []string{"a", "b"},
			delimiter: ".PARA",
			want:      nil,
		},
		{
			name:      "delimiter requires exact equality",
			lines:     []string{".PARA ", "a", ".PARA"},
			delimiter: ".PARA",
			want:      [][]string{{".PARA ", "a"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.lines, tt.delimiter)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q, %q) = %v, want %v", tt.lines, tt.delimiter, got, tt.want)
			}
		})
	}
}

func TestTrailing(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		delimiter string
		want      []string
	}{
		{
			name:      "clean ending",
			lines:     []string{"a", ".PARA"},
			delimiter: ".PARA",
			want:      nil,
		},
		{
			name:      "stranded lines",
			lines:     []string{"a", ".PARA", "b", "c"},
			delimiter: ".PARA",
			want:      []string{"b", "c"},
		},
		{
			name:      "no delimiter at all",
			lines:     []string{"a", "b"},
			delimiter: ".PARA",
			want:      []string{"a", "b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Trailing(tt.lines, tt.delimiter)
			if len(got) != len(tt.want) {
				t.Fatalf("Trailing = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Trailing[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		policy Counting
		want   int
	}{
		{name: "empty region", lines: nil, policy: CountRunes, want: 0},
		{name: "empty line still counts", lines: []string{""}, policy: CountRunes, want: 1},
		{name: "ascii runes", lines: []string{"abc", "de"}, policy: CountRunes, want: 7},
		{name: "ascii bytes", lines: []string{"abc", "de"}, policy: CountBytes, want: 7},
		{name: "multibyte runes", lines: []string{"héllo"}, policy: CountRunes, want: 6},
		{name: "multibyte bytes", lines: []string{"héllo"}, policy: CountBytes, want: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Length(tt.lines, tt.policy); got != tt.want {
				t.Errorf("Length(%q, %q) = %d, want %d", tt.lines, tt.policy, got, tt.want)
			}
		})
	}
}

func TestLengths(t *testing.T) {
	regions := [][]string{{"abc"}, nil, {"d", "e"}}
	want := []int{4, 0, 4}
	if got := Lengths(regions, CountRunes); !reflect.DeepEqual(got, want) {
		t.Errorf("Lengths = %v, want %v", got, want)
	}
}

func TestParseCounting(t *testing.T) {
	if got, err := ParseCounting("runes"); err != nil || got != CountRunes {
		t.Errorf("ParseCounting(runes) = %v, %v", got, err)
	}
	if got, err := ParseCounting("bytes"); err != nil || got != CountBytes {
		t.Errorf("ParseCounting(bytes) = %v, %v", got, err)
	}
	if _, err := ParseCounting("words"); err == nil {
		t.Error("ParseCounting(words) succeeded, want error")
	}
}

func TestCountingValid(t *testing.T) {
	if !CountRunes.Valid() || !CountBytes.Valid() {
		t.Error("known policies reported invalid")
	}
	if Counting("words").Valid() {
		t.Error("Counting(words).Valid() = true, want false")
	}
}
