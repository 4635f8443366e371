package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a short stable content hash, used to correlate
// repeated uploads of the same document.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8])
}
