package resettokengenerator

import (
	"encoding/hex"
	"testing"
)

func TestTokenFormat(t *testing.T) {
	g := NewGenerator()
	token := g.GenerateResetToken()

	if len(token) != 40 {
		t.Fatalf("expected 40 hex characters, got %d", len(token))
	}
	if _, err := hex.DecodeString(string(token)); err != nil {
		t.Fatalf("token is not valid hex: %v", err)
	}
}

func TestTokensAreUnique(t *testing.T) {
	g := NewGenerator()
	seen := make(map[string]bool)
	for ix := 0; ix < 1000; ix++ {
		token := string(g.GenerateResetToken())
		if seen[token] {
			t.Fatalf("duplicate token generated: %v", token)
		}
		seen[token] = true
	}
}
