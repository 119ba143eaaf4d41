package align

import (
	"math"
	"testing"
)

func TestPnormReferenceValues(t *testing.T) {
	tests := []struct {
		name string
		z    float64
		want float64
		tol  float64
	}{
		{name: "zero", z: 0, want: 0.5, tol: 1e-6},
		{name: "one sigma", z: 1, want: 0.841345, tol: 1e-4},
		{name: "two sigma", z: 2, want: 0.977250, tol: 1e-4},
		{name: "three sigma", z: 3, want: 0.998650, tol: 1e-4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pnorm(tt.z)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("pnorm(%v) = %v, want %v within %v", tt.z, got, tt.want, tt.tol)
			}
		})
	}
}

func TestPnormMonotone(t *testing.T) {
	prev := pnorm(0)
	for z := 0.1; z <= 6; z += 0.1 {
		got := pnorm(z)
		if got < prev {
			t.Fatalf("pnorm decreased at z=%v: %v < %v", z, got, prev)
		}
		prev = got
	}
}

func TestMatchEmptyUnits(t *testing.T) {
	m := NewModel(DefaultRatio, DefaultVariance)
	if got := m.match(0, 0); got != 0 {
		t.Errorf("match(0, 0) = %d, want 0", got)
	}
}

func TestMatchEqualLengthsCostNothing(t *testing.T) {
	m := NewModel(DefaultRatio, DefaultVariance)
	for _, l := range []int{1, 8, 42, 100, 5000} {
		if got := m.match(l, l); got != 0 {
			t.Errorf("match(%d, %d) = %d, want 0", l, l, got)
		}
	}
}

func TestMatchGrowsWithImbalance(t *testing.T) {
	m := NewModel(DefaultRatio, DefaultVariance)
	small := m.match(10, 14)
	large := m.match(10, 30)
	if small <= 0 {
		t.Errorf("match(10, 14) = %d, want > 0", small)
	}
	if large <= small {
		t.Errorf("match(10, 30) = %d, want > match(10, 14) = %d", large, small)
	}
}

func TestMatchSymmetricUnderUnitRatio(t *testing.T) {
	m := NewModel(DefaultRatio, DefaultVariance)
	tests := [][2]int{{9, 0}, {10, 30}, {3, 7}}
	for _, tt := range tests {
		if got, want := m.match(tt[0], tt[1]), m.match(tt[1], tt[0]); got != want {
			t.Errorf("match(%d, %d) = %d, match(%d, %d) = %d, want equal", tt[0], tt[1], got, tt[1], tt[0], want)
		}
	}
}

func TestMatchCapsUnderflow(t *testing.T) {
	m := NewModel(DefaultRatio, DefaultVariance)
	if got := m.match(100000, 1); got != bigDistance {
		t.Errorf("match(100000, 1) = %d, want %d", got, bigDistance)
	}
}

func TestCostDispatch(t *testing.T) {
	m := NewModel(DefaultRatio, DefaultVariance)
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		want           int
	}{
		{name: "substitution of equal lengths", x1: 10, y1: 10, want: 0},
		{name: "deletion", x1: 9, want: m.match(9, 0) + m.GapPenalty},
		{name: "insertion", y1: 9, want: m.match(0, 9) + m.GapPenalty},
		{name: "expansion joins target pair", x1: 10, y1: 5, y2: 5, want: m.PairPenalty},
		{name: "contraction joins source pair", x1: 5, y1: 10, x2: 5, want: m.PairPenalty},
		{name: "melding joins both pairs", x1: 7, y1: 7, x2: 8, y2: 8, want: m.DoublePenalty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Cost(tt.x1, tt.y1, tt.x2, tt.y2); got != tt.want {
				t.Errorf("Cost(%d, %d, %d, %d) = %d, want %d", tt.x1, tt.y1, tt.x2, tt.y2, got, tt.want)
			}
		})
	}
}

func TestCostSubstitutionBeatsGapPair(t *testing.T) {
	m := NewModel(DefaultRatio, DefaultVariance)
	for _, l := range []int{1, 5, 20, 100} {
		sub := m.Cost(l, l, 0, 0)
		gaps := m.Cost(l, 0, 0, 0) + m.Cost(0, l, 0, 0)
		if sub > gaps {
			t.Errorf("length %d: substitution costs %d, deletion+insertion %d", l, sub, gaps)
		}
	}
}

func TestCostRatioShiftsExpectation(t *testing.T) {
	// Under a 1.1 ratio a target 10% longer than the source is the
	// expected case and must cost less than an exactly equal target.
	m := NewModel(1.1, DefaultVariance)
	stretched := m.Cost(100, 110, 0, 0)
	equal := m.Cost(100, 100, 0, 0)
	if stretched >= equal {
		t.Errorf("Cost(100, 110) = %d, want < Cost(100, 100) = %d", stretched, equal)
	}
}
