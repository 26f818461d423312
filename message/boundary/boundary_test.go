package boundary_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-email-compose/message/boundary"
)

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	g := boundary.New()
	b1 := g.Generate()
	b2 := g.Generate()
	assert.Len(t, b1, 30)
	assert.NotEqual(t, b1, b2)
}

func TestGenerator_GenerateSafe_AvoidsCollision(t *testing.T) {
	t.Parallel()

	// every byte is 0, so Generate always returns the same 30-character
	// string; GenerateSafe must keep calling Generate until the candidate
	// no longer appears in contents, which never happens here, so it
	// would spin forever against a colliding contents string. Use a
	// contents string the fixed candidate does NOT appear in to confirm
	// the non-colliding path returns immediately.
	g := &boundary.Generator{Rand: bytes.NewReader(bytes.Repeat([]byte{0}, 60))}
	candidate := g.Generate()

	g2 := &boundary.Generator{Rand: bytes.NewReader(bytes.Repeat([]byte{0}, 30))}
	safe := g2.GenerateSafe("this contents string does not contain the candidate")
	assert.Equal(t, candidate, safe)
}

func TestGenerator_GenerateSafe_RegeneratesOnCollision(t *testing.T) {
	t.Parallel()

	// first 30 bytes all zero, next 30 bytes all one: the first candidate
	// collides with contents, forcing a second call that must differ.
	src := append(bytes.Repeat([]byte{0}, 30), bytes.Repeat([]byte{1}, 30)...)
	g := &boundary.Generator{Rand: bytes.NewReader(src)}

	zeroOnly := &boundary.Generator{Rand: bytes.NewReader(bytes.Repeat([]byte{0}, 30))}
	colliding := zeroOnly.Generate()

	safe := g.GenerateSafe("prefix " + colliding + " suffix")
	assert.NotEqual(t, colliding, safe)
	assert.False(t, strings.Contains("prefix "+colliding+" suffix", safe))
}
