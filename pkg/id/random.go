// Package id generates short random identifiers.
package id

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

const (
	lowerAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	mixedAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Alphanumeric returns n random characters from [a-z0-9], or from
// [a-zA-Z0-9] when mixedCase is set. n <= 0 returns an empty string.
func Alphanumeric(n int, mixedCase bool) string {
	if n <= 0 {
		return ""
	}
	alphabet := lowerAlphabet
	if mixedCase {
		alphabet = mixedAlphabet
	}

	out := make([]byte, 0, n)
	// At most 8 of every 256 byte values are rejected.
	buf := make([]byte, n+n/4+1)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return fallback(n, alphabet)
		}
		out = appendUnbiased(out, buf, alphabet, n)
	}
	return string(out)
}

// appendUnbiased maps random bytes onto alphabet until dst holds n characters.
// Bytes at or above the largest multiple of len(alphabet) are skipped so every
// character is equally likely.
func appendUnbiased(dst, src []byte, alphabet string, n int) []byte {
	limit := 256 - 256%len(alphabet)
	for _, b := range src {
		if len(dst) == n {
			break
		}
		if int(b) >= limit {
			continue
		}
		dst = append(dst, alphabet[int(b)%len(alphabet)])
	}
	return dst
}

func fallback(n int, alphabet string) string {
	// Fallback: use time-based entropy (degraded but functional)
	var seed [8]byte
	binary.BigEndian.PutUint64(seed[:], uint64(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[int(seed[i%len(seed)]^byte(i*31))%len(alphabet)]
	}
	return string(b)
}
