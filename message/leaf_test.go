package message_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-email-compose/message"
	"github.com/zostay/go-email-compose/message/transfer"
)

func TestLeaf_AutoDetectsSevenBit(t *testing.T) {
	t.Parallel()

	l := message.NewInline("text/plain", "hello, world")

	var buf bytes.Buffer
	_, err := l.WriteTo(&buf)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Content-Transfer-Encoding: 7bit\r\n")
	assert.Contains(t, buf.String(), "hello, world")
}

func TestLeaf_AutoDetectsQuotedPrintable(t *testing.T) {
	t.Parallel()

	l := message.NewInline("text/plain", "caf\xe9 with one high bit byte")

	var buf bytes.Buffer
	_, err := l.WriteTo(&buf)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Content-Transfer-Encoding: quoted-printable\r\n")
	assert.Contains(t, buf.String(), "=E9")
}

func TestLeaf_ExplicitEncodingSkipsAnalysis(t *testing.T) {
	t.Parallel()

	l := message.NewAttachment("data.bin", "application/octet-stream", strings.NewReader("binary content"), transfer.Base64)

	var buf bytes.Buffer
	_, err := l.WriteTo(&buf)
	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Content-Disposition: attachment;")
	assert.Contains(t, out, "filename=data.bin")
	assert.Contains(t, out, "Content-Transfer-Encoding: base64\r\n")
	assert.NotContains(t, out, "binary content")
}

func TestLeaf_BlankLineSeparatesHeaderFromBody(t *testing.T) {
	t.Parallel()

	l := message.NewInline("text/plain", "hello, world")

	var buf bytes.Buffer
	_, err := l.WriteTo(&buf)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\r\n\r\nhello, world")
}

func TestLeaf_IsMultipartAndGetHeader(t *testing.T) {
	t.Parallel()

	l := message.NewInline("text/plain", "x")
	assert.False(t, l.IsMultipart())
	assert.Equal(t, &l.Header, l.GetHeader())
}
