package align

import "math"

// bigDistance caps the match cost when the two-tailed probability
// underflows to zero on extreme length mismatches.
const bigDistance = 2500

// Model parameter defaults. Ratio and variance are the language-pair
// independent calibration from Gale & Church; the penalties are -100 times
// the log prior probability of each operation class relative to a
// one-to-one substitution.
const (
	DefaultRatio    = 1.0
	DefaultVariance = 6.8

	DefaultGapPenalty    = 450
	DefaultPairPenalty   = 230
	DefaultDoublePenalty = 440
)

// CostFunc scores one candidate operation from up to two unit lengths per
// side. A zero second argument marks an absent unit: (x1, y1, 0, 0) is a
// substitution, deletion or insertion depending on which of x1 and y1 are
// zero, (x1, y1, 0, y2) an expansion, (x1, y1, x2, 0) a contraction and
// (x1, y1, x2, y2) a melding.
type CostFunc func(x1, y1, x2, y2 int) int

// Model scores operations under a Gaussian model of the number of target
// characters generated per source character.
type Model struct {
	// Ratio is the expected number of target characters per source
	// character.
	Ratio float64
	// Variance is the variance of that count per source character.
	Variance float64

	// GapPenalty is added to the length cost of deletions and insertions,
	// PairPenalty to contractions and expansions, DoublePenalty to
	// meldings.
	GapPenalty    int
	PairPenalty   int
	DoublePenalty int
}

// NewModel returns a model with the given ratio and variance and the
// default operation penalties.
func NewModel(ratio, variance float64) Model {
	return Model{
		Ratio:         ratio,
		Variance:      variance,
		GapPenalty:    DefaultGapPenalty,
		PairPenalty:   DefaultPairPenalty,
		DoublePenalty: DefaultDoublePenalty,
	}
}

// Cost implements CostFunc, dispatching on which arguments are zero and
// adding the operation-class penalty to the length match cost.
func (m Model) Cost(x1, y1, x2, y2 int) int {
	switch {
	case x2 == 0 && y2 == 0:
		switch {
		case x1 == 0:
			return m.match(x1, y1) + m.GapPenalty
		case y1 == 0:
			return m.match(x1, y1) + m.GapPenalty
		default:
			return m.match(x1, y1)
		}
	case x2 == 0:
		return m.match(x1, y1+y2) + m.PairPenalty
	case y2 == 0:
		return m.match(x1+x2, y1) + m.PairPenalty
	default:
		return m.match(x1+x2, y1+y2) + m.DoublePenalty
	}
}

// match returns -100 times the log of the two-tailed probability that a
// source unit of length len1 corresponds to a target unit of length len2,
// truncated to an integer. Two empty units match for free; a probability
// that underflows to zero yields bigDistance.
func (m Model) match(len1, len2 int) int {
	if len1 == 0 && len2 == 0 {
		return 0
	}
	mean := (float64(len1) + float64(len2)/m.Ratio) / 2
	z := (m.Ratio*float64(len1) - float64(len2)) / math.Sqrt(m.Variance*mean)
	if z < 0 {
		z = -z
	}
	pd := 2 * (1 - pnorm(z))
	if pd > 0 {
		return int(-100 * math.Log(pd))
	}
	return bigDistance
}

// pnorm evaluates the standard normal CDF at z using the polynomial
// approximation of Gradsteyn & Rhyzik 26.2.17, accurate to about 1e-7.
func pnorm(z float64) float64 {
	t := 1 / (1 + 0.2316419*z)
	return 1 - 0.3989423*math.Exp(-z*z/2)*
		((((1.330274429*t-1.821255978)*t+1.781477937)*t-0.356563782)*t+0.319381530)*t
}
