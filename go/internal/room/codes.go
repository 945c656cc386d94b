package room

import (
	"crypto/rand"
	"strings"
)

// Room codes are short human-shareable tokens. The alphabet matches what the
// join form accepts: uppercase letters and digits.
const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6
)

// NewRoomCode generates a random room code. Uniqueness is enforced by the
// store; the coordinator retries on collision.
func NewRoomCode() string {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		panic(err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}

// NormalizeRoomCode maps user input to the stored form: trimmed, uppercase.
func NormalizeRoomCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
