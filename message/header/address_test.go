package header_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-email-compose/message/header"
)

func TestMailbox_Render(t *testing.T) {
	t.Parallel()

	al := header.NewAddressList(header.NewMailbox("Example User", "user@example.com"))
	var h header.Header
	h.Set(header.From, al)
	f := h.Fields()[0]
	assert.Equal(t, "From: Example User <user@example.com>", string(f.Bytes()))
}

func TestAddressList_MultipleAddresses(t *testing.T) {
	t.Parallel()

	al := header.NewAddressList(
		header.NewMailbox("A", "a@example.com"),
		header.NewAddress("b@example.com"),
	)

	var h header.Header
	h.Set(header.To, al)
	var buf []byte
	f := h.Fields()[0]
	buf = f.Bytes()
	assert.Equal(t, "To: A <a@example.com>, <b@example.com>", string(buf))
}

func TestGroup_Render(t *testing.T) {
	t.Parallel()

	g := header.NewGroup("undisclosed-recipients",
		header.NewAddress("a@example.com"),
		header.NewAddress("b@example.com"),
	)
	al := header.NewAddressList(g)

	var h header.Header
	h.Set(header.To, al)
	f := h.Fields()[0]
	assert.Equal(t, "To: undisclosed-recipients: <a@example.com>, <b@example.com>;", string(f.Bytes()))
}

func TestMailbox_NonASCIIName(t *testing.T) {
	t.Parallel()

	al := header.NewAddressList(header.NewMailbox("Jöran", "joran@example.com"))
	var h header.Header
	h.Set(header.From, al)
	f := h.Fields()[0]
	s := string(f.Bytes())
	assert.Contains(t, s, "=?UTF-8?")
	assert.Contains(t, s, "<joran@example.com>")
}
