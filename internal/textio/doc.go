// Package textio reads line-oriented alignment inputs, transcoding from
// legacy encodings to UTF-8 on the way in.
package textio
