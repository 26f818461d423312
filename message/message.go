package message

import (
	"errors"
	"fmt"
	"io"

	"github.com/zostay/go-email-compose/message/header"
	"github.com/zostay/go-email-compose/message/transfer"
)

// Message is a complete, top-level email message: a header and a root Part.
// The root Part may be a Leaf (a single-part message) or a Multipart (a
// MIME tree).
type Message struct {
	header.Header

	Root Part

	env *Environment
}

// New returns a Message wrapping root. env supplies the clock, boundary
// generator, and hostname used to synthesize ambient headers on WriteTo; a
// nil env is equivalent to DefaultEnvironment().
func New(env *Environment, root Part) *Message {
	if env == nil {
		env = DefaultEnvironment()
	}
	return &Message{Root: root, env: env}
}

// WriteTo synthesizes Date and Message-ID if the caller hasn't already set
// them, and MIME-Version if it isn't set and the message needs it (see
// needsMIMEVersion), then writes one combined header block — the
// envelope headers followed by the root part's own content headers (its
// Content-Type, Content-Transfer-Encoding, and Content-Disposition) — a
// single blank line, and finally the root part's body.
//
// This can only be called once: a Leaf's body Reader is consumed as it is
// written.
func (m *Message) WriteTo(w io.Writer) (int64, error) {
	if m.Root != nil {
		if err := m.Root.prepareHeader(); err != nil {
			return 0, err
		}
	}

	m.synthesizeHeaders()

	combined := m.Header.Clone()
	if m.Root != nil {
		combined.Merge(m.Root.GetHeader())
	}

	hn, err := combined.WriteTo(w)
	if err != nil {
		var malformed *header.MalformedHeader
		if errors.As(err, &malformed) {
			return hn, malformed
		}
		return hn, &SinkError{Err: err}
	}

	sn, err := io.WriteString(w, "\r\n")
	n := hn + int64(sn)
	if err != nil {
		return n, &SinkError{Err: err}
	}

	if m.Root == nil {
		return n, nil
	}

	pn, err := m.Root.WriteBody(w)
	return n + pn, err
}

func (m *Message) synthesizeHeaders() {
	if _, ok := m.Header.Get(header.Date); !ok {
		m.Header.SetDate(header.NewDateTime(m.env.Now()))
	}
	if _, ok := m.Header.Get(header.MessageID); !ok {
		m.Header.SetMessageID(m.generateMessageID())
	}
	if _, ok := m.Header.Get(header.MIMEVersion); !ok && m.needsMIMEVersion() {
		m.Header.SetMIMEVersion("1.0")
	}
}

// needsMIMEVersion reports whether the message tree requires a MIME-Version
// header: either the root part is itself a Multipart, or it is a Leaf whose
// settled Content-Transfer-Encoding is something other than 7bit.
func (m *Message) needsMIMEVersion() bool {
	if m.Root == nil {
		return false
	}
	if m.Root.IsMultipart() {
		return true
	}
	cte, ok := m.Root.GetHeader().GetTransferEncoding()
	return ok && cte != transfer.Bit7 && cte != transfer.None
}

// generateMessageID synthesizes a Message-ID local part from the boundary
// generator's entropy source paired with the environment's hostname. With
// no boundary generator it falls back to the fixed local part "generated".
func (m *Message) generateMessageID() string {
	if m.env.Boundary != nil {
		return m.env.Boundary.Generate() + "@" + m.env.Hostname()
	}
	return fmt.Sprintf("generated@%s", m.env.Hostname())
}
