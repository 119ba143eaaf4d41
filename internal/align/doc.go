// Package align implements length-based alignment of parallel unit
// sequences.
//
// The engine is the Gale & Church (1993) dynamic program: the unit lengths
// of two parallel sequences are compared under a Gaussian model of the
// target-to-source length ratio, and the cheapest path of substitutions,
// deletions, insertions, contractions, expansions and meldings is
// recovered. Costs are -100 times log probabilities rounded to integers,
// so a perfect length match costs zero and less likely pairings cost more.
//
// The package is pure computation: callers measure their regions, run
// Align, and map the returned operations back onto region content.
package align
