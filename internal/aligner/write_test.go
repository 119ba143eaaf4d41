package aligner_test

import (
	"bytes"
	"context"
	"testing"

	"bitext/internal/aligner"
)

func runFixture(t *testing.T, source, target []string) *aligner.Result {
	t.Helper()
	res, err := newTestAligner(t).Run(context.Background(), source, target)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return res
}

func TestWriteRoundTripsParallelDocuments(t *testing.T) {
	// When every bead is a substitution the serialized outputs reproduce
	// the inputs exactly.
	source := []string{"aaaa aaaa", "<s>", "bbbb bbbb", "<s>", "<p>"}
	target := []string{"cccc cccc", "<s>", "dddd dddd", "<s>", "<p>"}
	res := runFixture(t, source, target)

	var bufS, bufT bytes.Buffer
	err := aligner.Write(&bufS, &bufT, res, aligner.WriteOptions{HardDelimiter: "<p>", SoftDelimiter: "<s>"})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	if got, want := bufS.String(), "aaaa aaaa\n<s>\nbbbb bbbb\n<s>\n<p>\n"; got != want {
		t.Errorf("source output = %q, want %q", got, want)
	}
	if got, want := bufT.String(), "cccc cccc\n<s>\ndddd dddd\n<s>\n<p>\n"; got != want {
		t.Errorf("target output = %q, want %q", got, want)
	}
}

func TestWriteRegroupsExpansion(t *testing.T) {
	// An expansion bead holds one source region against two target
	// regions, so the target output collapses the two regions into one.
	source := []string{"aaaaaaaaa", "<s>", "<p>"}
	target := []string{"bbbb", "<s>", "cccc", "<s>", "<p>"}
	res := runFixture(t, source, target)

	var bufS, bufT bytes.Buffer
	err := aligner.Write(&bufS, &bufT, res, aligner.WriteOptions{HardDelimiter: "<p>", SoftDelimiter: "<s>"})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	if got, want := bufS.String(), "aaaaaaaaa\n<s>\n<p>\n"; got != want {
		t.Errorf("source output = %q, want %q", got, want)
	}
	if got, want := bufT.String(), "bbbb\ncccc\n<s>\n<p>\n"; got != want {
		t.Errorf("target output = %q, want %q", got, want)
	}
}

func TestWriteEmptySideStillDelimited(t *testing.T) {
	// A deletion bead has no target content, but the target output still
	// carries the soft delimiter so the region streams stay in step.
	source := []string{"xxxxx", "<s>", "<p>"}
	target := []string{"<p>"}
	res := runFixture(t, source, target)

	var bufS, bufT bytes.Buffer
	err := aligner.Write(&bufS, &bufT, res, aligner.WriteOptions{HardDelimiter: "<p>", SoftDelimiter: "<s>"})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	if got, want := bufS.String(), "xxxxx\n<s>\n<p>\n"; got != want {
		t.Errorf("source output = %q, want %q", got, want)
	}
	if got, want := bufT.String(), "<s>\n<p>\n"; got != want {
		t.Errorf("target output = %q, want %q", got, want)
	}
}

func TestWriteScores(t *testing.T) {
	source := []string{"aaaa aaaa", "<s>", "<p>"}
	target := []string{"bbbb bbbb", "<s>", "<p>"}
	res := runFixture(t, source, target)

	var bufS, bufT bytes.Buffer
	err := aligner.Write(&bufS, &bufT, res, aligner.WriteOptions{
		HardDelimiter: "<p>",
		SoftDelimiter: "<s>",
		Scores:        true,
	})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	if got, want := bufS.String(), ".Score 0\naaaa aaaa\n<s>\n<p>\n"; got != want {
		t.Errorf("source output = %q, want %q", got, want)
	}
	if got, want := bufT.String(), ".Score 0\nbbbb bbbb\n<s>\n<p>\n"; got != want {
		t.Errorf("target output = %q, want %q", got, want)
	}
}

func TestWriteEmptyResult(t *testing.T) {
	res := runFixture(t, nil, nil)
	var bufS, bufT bytes.Buffer
	err := aligner.Write(&bufS, &bufT, res, aligner.WriteOptions{HardDelimiter: "<p>", SoftDelimiter: "<s>"})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if bufS.Len() != 0 || bufT.Len() != 0 {
		t.Errorf("outputs = %q / %q, want empty", bufS.String(), bufT.String())
	}
}
