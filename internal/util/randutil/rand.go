package randutil

import (
	"crypto/rand"
	"log/slog"
	"math/big"
)

const hexdigits = "0123456789abcdef"

// RandHex generates a cryptographically random lowercase-hex string of
// length n using an unbiased selection.
func RandHex(n int) string {
	result := make([]byte, n)
	max := big.NewInt(int64(len(hexdigits)))

	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			// Fallback: this should never happen with crypto/rand
			slog.Error("crypto/rand failed", "error", err)
			result[i] = hexdigits[0]
			continue
		}
		result[i] = hexdigits[num.Int64()]
	}
	return string(result)
}
