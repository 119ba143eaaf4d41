// Package aligner runs the full document alignment pipeline: hard-region
// pairing, soft-region alignment within each pair, bead construction, and
// serialization of the aligned outputs.
package aligner
