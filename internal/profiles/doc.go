// Package profiles resolves the distance-model calibration for a language
// pair.
//
// A small builtin table covers the published pairs; user catalogs loaded
// from YAML overlay it, so a site can calibrate its own corpora without
// rebuilding. Every pair falls back to the language-independent default
// calibration when nothing more specific is known.
package profiles
