// Package tmstore persists alignment runs and deduplicated segment pairs
// in a SQLite translation memory.
//
// Every recorded run keeps its parameters and counters for provenance;
// pairs are keyed by a content digest so re-aligning the same documents
// never duplicates them. A file lock serializes access across processes.
package tmstore
