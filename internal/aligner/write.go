package aligner

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteOptions control aligned-output serialization.
type WriteOptions struct {
	HardDelimiter string
	SoftDelimiter string
	// Scores prefixes every bead in both outputs with a ".Score <cost>"
	// line.
	Scores bool
}

// Write serializes an alignment as two parallel documents: for each bead
// its source lines then a soft delimiter go to sourceW, its target lines
// then a soft delimiter to targetW, and each hard region closes with a
// hard delimiter in both. Reading the two outputs region by region yields
// matching translation units.
func Write(sourceW, targetW io.Writer, res *Result, opts WriteOptions) error {
	bs := bufio.NewWriter(sourceW)
	bt := bufio.NewWriter(targetW)

	for _, reg := range res.Regions {
		for _, b := range reg.Beads {
			if opts.Scores {
				score := ".Score " + strconv.Itoa(b.Op.Cost)
				writeLine(bs, score)
				writeLine(bt, score)
			}
			for _, lines := range b.Source {
				for _, line := range lines {
					writeLine(bs, line)
				}
			}
			writeLine(bs, opts.SoftDelimiter)
			for _, lines := range b.Target {
				for _, line := range lines {
					writeLine(bt, line)
				}
			}
			writeLine(bt, opts.SoftDelimiter)
		}
		writeLine(bs, opts.HardDelimiter)
		writeLine(bt, opts.HardDelimiter)
	}

	if err := bs.Flush(); err != nil {
		return fmt.Errorf("write aligned source: %w", err)
	}
	if err := bt.Flush(); err != nil {
		return fmt.Errorf("write aligned target: %w", err)
	}
	return nil
}

// writeLine ignores intermediate errors; bufio writers latch the first
// failure and Flush reports it.
func writeLine(w *bufio.Writer, line string) {
	w.WriteString(line)
	w.WriteByte('\n')
}
