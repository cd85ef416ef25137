package id

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"strings"

	"github.com/google/uuid"
)

func source(r io.Reader) io.Reader {
	if r == nil {
		return rand.Reader
	}
	return r
}

// UUID generates a UUID v4 (random).
// Returns a string in the format: xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx
func UUID(r io.Reader) string {
	u, err := uuid.NewRandomFromReader(source(r))
	if err != nil {
		return uuid.New().String()
	}
	return u.String()
}

// Compact generates a UUID v4 without hyphens.
func Compact(r io.Reader) string {
	return strings.ReplaceAll(UUID(r), "-", "")
}

// Short generates a short random hex ID (16 characters).
func Short(r io.Reader) string {
	b := make([]byte, 8)
	_, _ = io.ReadFull(source(r), b)
	return hex.EncodeToString(b)
}

// Alphanumeric generates a random alphanumeric string of the specified length.
// Uses uppercase, lowercase letters and digits.
func Alphanumeric(r io.Reader, length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	if length <= 0 {
		return ""
	}
	b := make([]byte, length)
	randBytes := make([]byte, length)
	_, _ = io.ReadFull(source(r), randBytes)
	for i := range b {
		b[i] = charset[int(randBytes[i])%len(charset)]
	}
	return string(b)
}
