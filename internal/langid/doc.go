// Package langid detects the language of line-oriented documents so
// profile lookup can run without the user naming the pair.
package langid
