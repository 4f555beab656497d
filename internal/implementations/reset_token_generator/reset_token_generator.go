package resettokengenerator

import (
	"crypto/rand"
	"encoding/hex"

	"enerbill/internal/core/domain/account"
)

const TOKEN_BYTES = 20

// Generator produces 160-bit tokens rendered as 40 lowercase hex
// characters.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateResetToken() account.ResetToken {
	b := make([]byte, TOKEN_BYTES)
	if _, err := rand.Read(b); err != nil {
		panic("Could not read random bytes for reset token.")
	}
	return account.ResetToken(hex.EncodeToString(b))
}
