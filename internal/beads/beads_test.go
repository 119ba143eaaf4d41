package beads_test

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"bitext/internal/align"
	"bitext/internal/beads"
	"bitext/internal/region"
)

func TestBuildPairsRunsByOperation(t *testing.T) {
	ops := []align.Op{
		{Kind: align.Substitution},
		{Kind: align.Expansion},
		{Kind: align.Deletion},
		{Kind: align.Insertion},
	}
	source := [][]string{{"s1"}, {"s2"}, {"s3"}}
	target := [][]string{{"t1"}, {"t2a"}, {"t2b"}, {"t4"}}

	got := beads.Build(ops, source, target)
	if len(got) != len(ops) {
		t.Fatalf("got %d beads, want %d", len(got), len(ops))
	}

	wantSource := [][][]string{{{"s1"}}, {{"s2"}}, {{"s3"}}, {}}
	wantTarget := [][][]string{{{"t1"}}, {{"t2a"}, {"t2b"}}, {}, {{"t4"}}}
	for i, b := range got {
		if len(b.Source) != len(wantSource[i]) {
			t.Errorf("bead %d source runs = %v, want %v", i, b.Source, wantSource[i])
			continue
		}
		for j := range b.Source {
			if !reflect.DeepEqual(b.Source[j], wantSource[i][j]) {
				t.Errorf("bead %d source[%d] = %v, want %v", i, j, b.Source[j], wantSource[i][j])
			}
		}
		if len(b.Target) != len(wantTarget[i]) {
			t.Errorf("bead %d target runs = %v, want %v", i, b.Target, wantTarget[i])
			continue
		}
		for j := range b.Target {
			if !reflect.DeepEqual(b.Target[j], wantTarget[i][j]) {
				t.Errorf("bead %d target[%d] = %v, want %v", i, j, b.Target[j], wantTarget[i][j])
			}
		}
	}
}

func TestBuildEmptyPath(t *testing.T) {
	if got := beads.Build(nil, nil, nil); len(got) != 0 {
		t.Errorf("Build(nil, nil, nil) = %v, want no beads", got)
	}
}

func TestBeadText(t *testing.T) {
	b := beads.Bead{
		Op:     align.Op{Kind: align.Contraction},
		Source: [][]string{{"first line", "second line"}, {"third line"}},
		Target: [][]string{{"ligne"}},
	}
	if got, want := b.SourceText(), "first line\nsecond line\nthird line"; got != want {
		t.Errorf("SourceText = %q, want %q", got, want)
	}
	if got, want := b.TargetText(), "ligne"; got != want {
		t.Errorf("TargetText = %q, want %q", got, want)
	}
}

func TestBeadEmptySideHasNoText(t *testing.T) {
	b := beads.Bead{Op: align.Op{Kind: align.Insertion}, Target: [][]string{{"only target"}}}
	if got := b.SourceText(); got != "" {
		t.Errorf("SourceText = %q, want empty", got)
	}
	if got := b.SourceLines(); len(got) != 0 {
		t.Errorf("SourceLines = %v, want none", got)
	}
}

// Aligning arbitrary region sets and rebuilding the documents from the
// beads must reproduce both inputs exactly.
func TestBuildRoundTripsRegions(t *testing.T) {
	m := align.NewModel(align.DefaultRatio, align.DefaultVariance)
	lineGen := rapid.StringMatching(`[a-z ]{0,40}`)
	regionGen := rapid.SliceOfN(lineGen, 0, 4)

	rapid.Check(t, func(t *rapid.T) {
		source := rapid.SliceOfN(regionGen, 0, 8).Draw(t, "source")
		target := rapid.SliceOfN(regionGen, 0, 8).Draw(t, "target")

		ops := align.Align(
			region.Lengths(source, region.CountRunes),
			region.Lengths(target, region.CountRunes),
			m.Cost,
		)
		bs := beads.Build(ops, source, target)

		var gotSource, gotTarget []string
		for _, b := range bs {
			gotSource = append(gotSource, b.SourceLines()...)
			gotTarget = append(gotTarget, b.TargetLines()...)
		}
		if want := concat(source); !reflect.DeepEqual(gotSource, want) {
			t.Fatalf("rebuilt source = %q, want %q", gotSource, want)
		}
		if want := concat(target); !reflect.DeepEqual(gotTarget, want) {
			t.Fatalf("rebuilt target = %q, want %q", gotTarget, want)
		}
	})
}

func concat(regions [][]string) []string {
	var lines []string
	for _, r := range regions {
		lines = append(lines, r...)
	}
	return lines
}
