// Package boundary generates MIME multipart boundary strings.
package boundary

import (
	"crypto/rand"
	"io"
	"strings"
)

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// length is chosen so the boundary carries comfortably more than 80 bits of
// entropy: 30 characters from a 62-character alphabet is about 178 bits.
const length = 30

// Generator produces MIME boundary strings. The zero value is not usable;
// use New to get one backed by a cryptographically secure source of
// randomness, or set Rand directly for deterministic tests.
type Generator struct {
	// Rand is the source of randomness used to pick boundary characters.
	Rand io.Reader
}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{Rand: rand.Reader}
}

// Generate returns a random boundary string. It is probably unique, but
// carries no guarantee against the specific contents it will delimit; use
// GenerateSafe when that matters.
func (g *Generator) Generate() string {
	idx := make([]byte, length)
	if _, err := io.ReadFull(g.Rand, idx); err != nil {
		panic(err) // entropy source failure; nothing sensible to return
	}

	s := make([]rune, length)
	for i, b := range idx {
		s[i] = letters[int(b)%len(letters)]
	}
	return string(s)
}

// GenerateSafe returns a random boundary guaranteed not to appear anywhere
// in contents, regenerating until a collision-free candidate is found.
func (g *Generator) GenerateSafe(contents string) string {
	for {
		b := g.Generate()
		if !strings.Contains(contents, b) {
			return b
		}
	}
}
