package header

import (
	"strings"

	"github.com/zostay/go-email-compose/message/header/field"
)

// Mailbox is a single RFC 5322 address, optionally with a display name.
type Mailbox struct {
	Name  string
	Email string
}

// NewMailbox builds a Mailbox with a display name.
func NewMailbox(name, email string) Mailbox {
	return Mailbox{Name: name, Email: email}
}

// NewAddress builds a bare Mailbox with no display name.
func NewAddress(email string) Mailbox {
	return Mailbox{Email: email}
}

func (mb Mailbox) render() string {
	if mb.Name == "" {
		return "<" + mb.Email + ">"
	}
	return field.EncodeText(quoteDisplayName(mb.Name), "UTF-8") + " <" + mb.Email + ">"
}

// quoteDisplayName wraps a display name in double quotes if it contains
// characters that RFC 5322 atoms can't carry unquoted.
func quoteDisplayName(name string) string {
	needsQuote := name == ""
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 0x80 {
			continue // encoded-word will handle this
		}
		if !isAtomChar(c) {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return name
	}
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

func isAtomChar(c byte) bool {
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
		return true
	}
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '/', '=', '?', '^', '_', '`', '{', '|', '}', '~', ' ':
		return true
	}
	return false
}

// Group is a named collection of mailboxes, rendered as "name: a, b;".
type Group struct {
	Name      string
	Mailboxes []Mailbox
}

// NewGroup builds a Group.
func NewGroup(name string, mbs ...Mailbox) Group {
	return Group{Name: name, Mailboxes: mbs}
}

func (g Group) render() string {
	var b strings.Builder
	b.WriteString(field.EncodeText(g.Name, "UTF-8"))
	b.WriteString(": ")
	for i, mb := range g.Mailboxes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(mb.render())
	}
	b.WriteString(";")
	return b.String()
}

// Addressable is a Mailbox or a Group; both can appear in an address list.
type Addressable interface {
	render() string
}

var (
	_ Addressable = Mailbox{}
	_ Addressable = Group{}
)

// AddressList is the Value implementation for address-list headers such as
// From, To, Cc, Bcc, Reply-To, and Sender.
type AddressList struct {
	Addresses []Addressable
}

// NewAddressList builds an AddressList from mailboxes and/or groups.
func NewAddressList(as ...Addressable) AddressList {
	return AddressList{Addresses: as}
}

func (al AddressList) renderBody() string {
	parts := make([]string, len(al.Addresses))
	for i, a := range al.Addresses {
		parts[i] = a.render()
	}
	return strings.Join(parts, ", ")
}

func (al AddressList) foldEncoding() *field.FoldEncoding {
	return field.DefaultFoldEncoding
}

var _ Value = AddressList{}
