package beads

import (
	"strings"

	"bitext/internal/align"
)

// Bead pairs one run of source regions with one run of target regions.
// Either run may be empty: an insertion bead consumes no source regions
// and a deletion bead no target regions.
type Bead struct {
	Op     align.Op
	Source [][]string
	Target [][]string
}

// SourceLines flattens the bead's source run into one line sequence.
func (b Bead) SourceLines() []string {
	return flatten(b.Source)
}

// TargetLines flattens the bead's target run into one line sequence.
func (b Bead) TargetLines() []string {
	return flatten(b.Target)
}

// SourceText joins the bead's source lines with newlines.
func (b Bead) SourceText() string {
	return strings.Join(b.SourceLines(), "\n")
}

// TargetText joins the bead's target lines with newlines.
func (b Bead) TargetText() string {
	return strings.Join(b.TargetLines(), "\n")
}

func flatten(regions [][]string) []string {
	var lines []string
	for _, r := range regions {
		lines = append(lines, r...)
	}
	return lines
}

// Build maps an alignment path back onto the regions whose lengths
// produced it. Each operation claims the next SourceUnits and TargetUnits
// regions on its side, so the emitted beads partition both inputs exactly
// and in document order. The bead slices alias the input regions.
func Build(ops []align.Op, source, target [][]string) []Bead {
	out := make([]Bead, 0, len(ops))
	var s, t int
	for _, op := range ops {
		ns := s + op.Kind.SourceUnits()
		nt := t + op.Kind.TargetUnits()
		out = append(out, Bead{
			Op:     op,
			Source: source[s:ns],
			Target: target[t:nt],
		})
		s, t = ns, nt
	}
	return out
}
