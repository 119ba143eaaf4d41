package tmstore

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// pairSeparator keeps ("ab", "c") and ("a", "bc") from hashing alike.
const pairSeparator = 0x1f

// PairDigest derives the content key for a source/target text pair.
func PairDigest(sourceText, targetText string) string {
	buf := make([]byte, 0, len(sourceText)+len(targetText)+1)
	buf = append(buf, sourceText...)
	buf = append(buf, pairSeparator)
	buf = append(buf, targetText...)
	sum := blake3.Sum256(buf)
	return hex.EncodeToString(sum[:])
}
