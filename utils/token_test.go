package utils

import (
	"strings"
	"testing"
)

func TestGenerateRandomToken(t *testing.T) {
	for _, length := range []int{1, 6, 32} {
		tok := GenerateRandomToken(length)
		if len(tok) != length {
			t.Errorf("len = %d, want %d", len(tok), length)
		}
		for _, ch := range tok {
			if !strings.ContainsRune(tokenCharset, ch) {
				t.Errorf("token %q contains %q, not in charset", tok, ch)
			}
		}
	}

	// Two draws colliding would mean the source is not random at all.
	if GenerateRandomToken(32) == GenerateRandomToken(32) {
		t.Error("two consecutive tokens are identical")
	}
}
