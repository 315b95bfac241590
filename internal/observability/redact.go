package observability

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashEmail returns a short stable digest of an email address for log lines.
// Addresses never appear in clear in the run log.
func HashEmail(email string) string {
	sum := sha256.Sum256([]byte(email))
	return hex.EncodeToString(sum[:])[:16]
}
