package message_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-email-compose/message"
	"github.com/zostay/go-email-compose/message/header"
)

func TestMessage_SynthesizesAmbientHeaders(t *testing.T) {
	t.Parallel()

	env := fixedEnv()
	env.Now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	env.Hostname = func() string { return "host.example.com" }

	root := message.NewInline("text/plain", "caf\xe9, not 7-bit clean")
	msg := message.New(env, root)
	msg.Header.SetSubject("hello")

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Date: Fri, 02 Jan 2026 03:04:05 +0000\r\n")
	assert.Contains(t, out, "MIME-Version: 1.0\r\n")
	assert.Contains(t, out, "@host.example.com>")
	assert.Contains(t, out, "\r\n\r\n")
}

func TestMessage_SevenBitRootOmitsMIMEVersion(t *testing.T) {
	t.Parallel()

	env := fixedEnv()
	root := message.NewInline("text/plain", "plain ascii")
	msg := message.New(env, root)

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	assert.NoError(t, err)
	assert.NotContains(t, buf.String(), "MIME-Version")
}

func TestMessage_SingleLeafRootMergesHeadersIntoOneBlock(t *testing.T) {
	t.Parallel()

	env := fixedEnv()
	root := message.NewInline("text/plain", "hi")
	msg := message.New(env, root)
	msg.Header.SetSubject("hello")

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Content-Type: text/plain\r\n")
	// Exactly one blank line in the whole message: between the merged
	// header block (envelope + leaf content headers) and the body.
	assert.Equal(t, 1, strings.Count(out, "\r\n\r\n"))
}

func TestMessage_DoesNotOverwriteExplicitHeaders(t *testing.T) {
	t.Parallel()

	env := fixedEnv()
	root := message.NewInline("text/plain", "hi")
	msg := message.New(env, root)
	msg.Header.SetMessageID("fixed-id@example.com")

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Message-ID: <fixed-id@example.com>\r\n")
}

func TestMessage_MultipartRoot(t *testing.T) {
	t.Parallel()

	env := fixedEnv()
	text := message.NewInline("text/plain", "hello")
	html := message.NewInline("text/html", "<p>hello</p>")
	alt, err := message.MultipartAlternative(env, text, html)
	assert.NoError(t, err)

	msg := message.New(env, alt)
	msg.Header.SetFrom(header.NewMailbox("Sender", "sender@example.com"))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Content-Type: multipart/alternative; boundary=")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "<p>hello</p>")
}
