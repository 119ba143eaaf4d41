package aligner

import (
	"context"
	"fmt"
	"log/slog"

	"bitext/internal/align"
	"bitext/internal/beads"
	"bitext/internal/logging"
	"bitext/internal/region"
)

// MismatchError reports documents whose hard-region counts differ. No
// alignment is attempted in that case because hard regions anchor the
// dynamic program; pairing them wrongly would misalign everything after
// the first mismatch.
type MismatchError struct {
	Delimiter   string
	SourceCount int
	TargetCount int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("input documents do not contain the same number of hard regions (%q): source has %d, target has %d",
		e.Delimiter, e.SourceCount, e.TargetCount)
}

// Options configure an Aligner.
type Options struct {
	HardDelimiter string
	SoftDelimiter string
	Counting      region.Counting
	Model         align.Model
	Logger        *slog.Logger
}

// Aligner aligns parallel documents hard region by hard region.
type Aligner struct {
	opts   Options
	cost   align.CostFunc
	logger *slog.Logger
}

// New validates the options and returns a ready Aligner.
func New(opts Options) (*Aligner, error) {
	if opts.HardDelimiter == "" {
		return nil, fmt.Errorf("hard delimiter must not be empty")
	}
	if opts.SoftDelimiter == "" {
		return nil, fmt.Errorf("soft delimiter must not be empty")
	}
	if opts.HardDelimiter == opts.SoftDelimiter {
		return nil, fmt.Errorf("hard and soft delimiters must differ, both are %q", opts.HardDelimiter)
	}
	if !opts.Counting.Valid() {
		return nil, fmt.Errorf("unknown counting policy %q", opts.Counting)
	}
	if opts.Model.Ratio <= 0 {
		return nil, fmt.Errorf("model ratio must be positive, got %v", opts.Model.Ratio)
	}
	if opts.Model.Variance <= 0 {
		return nil, fmt.Errorf("model variance must be positive, got %v", opts.Model.Variance)
	}
	return &Aligner{
		opts:   opts,
		cost:   opts.Model.Cost,
		logger: logging.NewComponentLogger(opts.Logger, "aligner"),
	}, nil
}

// RegionAlignment holds the beads of one hard-region pair.
type RegionAlignment struct {
	Index int
	Beads []beads.Bead
	Cost  int
}

// Stats aggregates counters across one run.
type Stats struct {
	HardRegions       int
	SourceSoftRegions int
	TargetSoftRegions int
	Beads             int
	ByKind            map[align.OpKind]int
	TotalCost         int
}

// Result is the outcome of aligning one document pair.
type Result struct {
	Regions []RegionAlignment
	Stats   Stats
}

// Beads returns every bead of the result in document order.
func (r *Result) Beads() []beads.Bead {
	out := make([]beads.Bead, 0, r.Stats.Beads)
	for _, reg := range r.Regions {
		out = append(out, reg.Beads...)
	}
	return out
}

// Run aligns the source document against the target document. Both
// arrive as line slices; hard regions must pair one to one, soft regions
// within each hard pair are aligned by the length model. Lines after the
// final delimiter on either side are dropped, mirroring the region
// splitter; callers warn about them separately.
func (a *Aligner) Run(ctx context.Context, sourceLines, targetLines []string) (*Result, error) {
	sourceHard := region.Split(sourceLines, a.opts.HardDelimiter)
	targetHard := region.Split(targetLines, a.opts.HardDelimiter)
	if len(sourceHard) != len(targetHard) {
		return nil, &MismatchError{
			Delimiter:   a.opts.HardDelimiter,
			SourceCount: len(sourceHard),
			TargetCount: len(targetHard),
		}
	}

	res := &Result{
		Regions: make([]RegionAlignment, 0, len(sourceHard)),
		Stats: Stats{
			HardRegions: len(sourceHard),
			ByKind:      make(map[align.OpKind]int),
		},
	}

	for i := range sourceHard {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sourceSoft := region.Split(sourceHard[i], a.opts.SoftDelimiter)
		targetSoft := region.Split(targetHard[i], a.opts.SoftDelimiter)

		ops := align.Align(
			region.Lengths(sourceSoft, a.opts.Counting),
			region.Lengths(targetSoft, a.opts.Counting),
			a.cost,
		)
		bs := beads.Build(ops, sourceSoft, targetSoft)
		cost := align.PathCost(ops)

		res.Regions = append(res.Regions, RegionAlignment{Index: i, Beads: bs, Cost: cost})
		res.Stats.SourceSoftRegions += len(sourceSoft)
		res.Stats.TargetSoftRegions += len(targetSoft)
		res.Stats.Beads += len(bs)
		res.Stats.TotalCost += cost
		for _, op := range ops {
			res.Stats.ByKind[op.Kind]++
		}

		a.logger.Debug("aligned hard region",
			logging.Int("region", i),
			logging.Int("source_soft", len(sourceSoft)),
			logging.Int("target_soft", len(targetSoft)),
			logging.Int("beads", len(bs)),
			logging.Int("cost", cost))
	}

	a.logger.Debug("alignment complete",
		logging.Int("hard_regions", res.Stats.HardRegions),
		logging.Int("beads", res.Stats.Beads),
		logging.Int("total_cost", res.Stats.TotalCost))
	return res, nil
}
