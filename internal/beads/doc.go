// Package beads groups aligned regions into beads, the pairing of a run
// of source regions with the run of target regions one alignment
// operation matched them to.
package beads
