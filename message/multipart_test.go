package message_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-email-compose/message"
	"github.com/zostay/go-email-compose/message/boundary"
	"github.com/zostay/go-email-compose/message/transfer"
)

func fixedEnv() *message.Environment {
	env := message.DefaultEnvironment()
	env.Boundary = &boundary.Generator{Rand: bytes.NewReader(bytes.Repeat([]byte{1}, 60))}
	return env
}

func TestMultipart_RejectsNonMultipartMediaType(t *testing.T) {
	t.Parallel()

	_, err := message.NewMultipart(fixedEnv(), "text/plain")
	assert.Error(t, err)
	var iv *message.InvariantViolation
	assert.ErrorAs(t, err, &iv)
}

func TestMultipart_WriteTo(t *testing.T) {
	t.Parallel()

	p1 := message.NewInline("text/plain", "part one")
	p2 := message.NewInline("text/plain", "part two")

	mm, err := message.MultipartMixed(fixedEnv(), p1, p2)
	assert.NoError(t, err)
	assert.True(t, mm.IsMultipart())
	assert.Len(t, mm.GetParts(), 2)

	ct, ok := mm.GetContentType()
	assert.True(t, ok)
	boundaryStr := ct.Boundary()
	assert.NotEmpty(t, boundaryStr)

	var buf bytes.Buffer
	_, err = mm.WriteTo(&buf)
	assert.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "--"+boundaryStr+"\r\n"))
	assert.Contains(t, out, "--"+boundaryStr+"--\r\n")
	assert.Contains(t, out, "part one")
	assert.Contains(t, out, "part two")
}

func TestMultipart_WriteToFailsWithoutBoundary(t *testing.T) {
	t.Parallel()

	mm := &message.Multipart{}
	mm.SetContentType("multipart/mixed")

	var buf bytes.Buffer
	_, err := mm.WriteTo(&buf)
	assert.Error(t, err)
}

func TestMultipart_WriteToAbortsOnBoundaryCollision(t *testing.T) {
	t.Parallel()

	seed := func() *boundary.Generator {
		return &boundary.Generator{Rand: bytes.NewReader(bytes.Repeat([]byte{1}, 30))}
	}
	boundaryStr := seed().Generate()

	env := message.DefaultEnvironment()
	env.Boundary = seed()

	p := message.NewAttachment("x.txt", "text/plain", strings.NewReader("--"+boundaryStr+"\r\nmalicious"), transfer.Bit7)

	mm, err := message.MultipartMixed(env, p)
	assert.NoError(t, err)

	var buf bytes.Buffer
	_, err = mm.WriteTo(&buf)
	var iv *message.InvariantViolation
	assert.ErrorAs(t, err, &iv)
}
