package utils

import "crypto/rand"

// Ambiguous characters (0/O, 1/I/l) are excluded; the code is typed
// back by hand from an email.
const tokenCharset = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

// GenerateRandomToken returns a random code of the given length,
// drawn from crypto/rand.
func GenerateRandomToken(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		panic("crypto/rand unavailable: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = tokenCharset[int(b)%len(tokenCharset)]
	}
	return string(buf)
}
