package align

// OpKind identifies one of the six operations an alignment path can take.
// Declaration order is significant: when candidate operations tie on cost,
// the engine prefers the earliest kind in this order.
type OpKind uint8

const (
	// Substitution pairs one source unit with one target unit.
	Substitution OpKind = iota
	// Deletion consumes one source unit with no target counterpart.
	Deletion
	// Insertion consumes one target unit with no source counterpart.
	Insertion
	// Contraction pairs two source units with one target unit.
	Contraction
	// Expansion pairs one source unit with two target units.
	Expansion
	// Melding pairs two source units with two target units.
	Melding
)

var opNames = [...]string{
	Substitution: "substitution",
	Deletion:     "deletion",
	Insertion:    "insertion",
	Contraction:  "contraction",
	Expansion:    "expansion",
	Melding:      "melding",
}

// opUnits maps each kind to the units it consumes on the source and
// target side.
var opUnits = [...][2]int{
	Substitution: {1, 1},
	Deletion:     {1, 0},
	Insertion:    {0, 1},
	Contraction:  {2, 1},
	Expansion:    {1, 2},
	Melding:      {2, 2},
}

// String returns the lower-case operation name.
func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "unknown"
}

// SourceUnits returns how many source units the operation consumes.
func (k OpKind) SourceUnits() int {
	return opUnits[k][0]
}

// TargetUnits returns how many target units the operation consumes.
func (k OpKind) TargetUnits() int {
	return opUnits[k][1]
}

// Op is one step of an alignment path. Source and Target hold the unit
// lengths the step consumed on each side, in document order; only the
// first SourceUnits and TargetUnits entries are meaningful for the
// operation's kind, the rest stay zero.
type Op struct {
	Kind   OpKind
	Cost   int
	Source [2]int
	Target [2]int
}
