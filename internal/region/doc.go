// Package region splits delimited documents into alignable regions and
// measures their lengths.
//
// Documents arrive as line slices. A delimiter is a complete line compared
// by exact equality; everything between two delimiter lines is one region.
// Hard delimiters bound the outer regions that anchor alignment, soft
// delimiters bound the inner regions that get aligned, and both levels
// split with the same rule.
package region
