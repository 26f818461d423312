package header_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-email-compose/message/header"
)

func TestMessageIDList(t *testing.T) {
	t.Parallel()

	var h header.Header
	h.SetReferences("a@example.com", "b@example.com")
	f := h.Fields()[0]
	assert.Equal(t, "References: <a@example.com> <b@example.com>", string(f.Bytes()))
}

func TestMessageIDDoesNotDoubleBracket(t *testing.T) {
	t.Parallel()

	var h header.Header
	h.SetMessageID("<already@example.com>")
	f := h.Fields()[0]
	assert.Equal(t, "Message-ID: <already@example.com>", string(f.Bytes()))
}

func TestTextList(t *testing.T) {
	t.Parallel()

	var h header.Header
	h.SetKeywords("foo", "bar", "baz")
	f := h.Fields()[0]
	assert.Equal(t, "Keywords: foo, bar, baz", string(f.Bytes()))
}

func TestURL(t *testing.T) {
	t.Parallel()

	var h header.Header
	h.SetContentLocation("https://example.com/a.png")
	f := h.Fields()[0]
	assert.Equal(t, "Content-Location: <https://example.com/a.png>", string(f.Bytes()))
}

func TestDateTimeFromString(t *testing.T) {
	t.Parallel()

	dt, err := header.DateTimeFromString("Fri, 02 Jan 2026 03:04:05 +0000")
	assert.NoError(t, err)
	assert.Equal(t, 2026, dt.Year())

	dt, err = header.DateTimeFromString("January 2, 2026")
	assert.NoError(t, err)
	assert.Equal(t, 2026, dt.Year())

	_, err = header.DateTimeFromString("not a date at all")
	assert.Error(t, err)
}
