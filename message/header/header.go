// Package header renders RFC 5322/MIME header fields from typed values.
//
// Every header field holds exactly one Value: a typed representation such
// as an AddressList, a DateTime, or a Parameterized, rather than a body
// string the caller must format by hand. Header.WriteTo folds and encodes
// each field as it writes, using field.FoldEncoding and field.EncodeText so
// that callers never deal with line length or RFC 2047 directly.
package header

import (
	"fmt"
	"io"
	"strings"

	"github.com/zostay/go-email-compose/message/header/field"
	"github.com/zostay/go-email-compose/message/header/param"
)

// MalformedHeader is returned by Header.WriteTo when a field's rendered
// body cannot be emitted as required, such as a Raw value carrying a bare
// CR, a bare LF, or a control character other than tab.
type MalformedHeader struct {
	Field  string
	Reason string
}

func (e *MalformedHeader) Error() string {
	return fmt.Sprintf("header: malformed field %q: %s", e.Field, e.Reason)
}

// These are standard headers defined in RFC 5322 and RFC 2045.
const (
	Bcc                     = "Bcc"
	Cc                      = "Cc"
	Comments                = "Comments"
	ContentDisposition      = "Content-Disposition"
	ContentID               = "Content-ID"
	ContentLanguage         = "Content-Language"
	ContentLocation         = "Content-Location"
	ContentTransferEncoding = "Content-Transfer-Encoding"
	ContentType             = "Content-Type"
	Date                    = "Date"
	From                    = "From"
	InReplyTo               = "In-Reply-To"
	Keywords                = "Keywords"
	MIMEVersion             = "MIME-Version"
	MessageID               = "Message-ID"
	References              = "References"
	ReplyTo                 = "Reply-To"
	Sender                  = "Sender"
	Subject                 = "Subject"
	To                      = "To"
)

// entry is one name/value pair in header order.
type entry struct {
	name  string
	value Value
}

// Header is an ordered collection of header fields. The zero value is an
// empty header ready to use.
type Header struct {
	entries []entry
}

// Len returns the number of fields currently set, counting repeated names
// separately.
func (h *Header) Len() int { return len(h.entries) }

// Clone returns a deep-enough copy of h for independent mutation; Value
// implementations are treated as immutable and shared.
func (h *Header) Clone() *Header {
	c := &Header{entries: make([]entry, len(h.entries))}
	copy(c.entries, h.entries)
	return c
}

// Add appends a new field with the given name and value without touching
// any existing field of the same name. Use this for headers that may
// legitimately repeat, such as Comments or Received.
func (h *Header) Add(name string, v Value) {
	h.entries = append(h.entries, entry{name, v})
}

// Set replaces all fields named name with a single field holding v. If no
// field with that name exists, one is appended.
func (h *Header) Set(name string, v Value) {
	for i := range h.entries {
		if strings.EqualFold(h.entries[i].name, name) {
			h.entries[i] = entry{name, v}
			h.deleteRest(name, i+1)
			return
		}
	}
	h.entries = append(h.entries, entry{name, v})
}

// deleteRest removes every remaining field named name starting at index i.
func (h *Header) deleteRest(name string, i int) {
	kept := h.entries[:i]
	for ; i < len(h.entries); i++ {
		if !strings.EqualFold(h.entries[i].name, name) {
			kept = append(kept, h.entries[i])
		}
	}
	h.entries = kept
}

// Merge appends every field from other to h, in other's order. It is used
// to combine a message's envelope headers with its root part's own content
// headers into a single top-level header block.
func (h *Header) Merge(other *Header) {
	h.entries = append(h.entries, other.entries...)
}

// Delete removes every field named name.
func (h *Header) Delete(name string) {
	kept := h.entries[:0]
	for _, e := range h.entries {
		if !strings.EqualFold(e.name, name) {
			kept = append(kept, e)
		}
	}
	h.entries = kept
}

// Get returns the first field's value named name.
func (h *Header) Get(name string) (Value, bool) {
	for _, e := range h.entries {
		if strings.EqualFold(e.name, name) {
			return e.value, true
		}
	}
	return nil, false
}

// GetAll returns every field's value named name, in header order.
func (h *Header) GetAll(name string) []Value {
	var vs []Value
	for _, e := range h.entries {
		if strings.EqualFold(e.name, name) {
			vs = append(vs, e.value)
		}
	}
	return vs
}

// Fields renders every entry to a field.Field, in header order.
func (h *Header) Fields() []*field.Field {
	fs := make([]*field.Field, len(h.entries))
	for i, e := range h.entries {
		fs[i] = field.New(e.name, e.value.renderBody())
	}
	return fs
}

// WriteTo writes every field as folded, CRLF-terminated wire bytes. It does
// not write the blank line separating headers from a body; the message
// serializer is responsible for that boundary. A field whose rendered body
// fails validation (see validateRenderedBody) aborts with a MalformedHeader
// before anything for that field is written.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, e := range h.entries {
		body := e.value.renderBody()
		if err := validateRenderedBody(body); err != nil {
			return total, &MalformedHeader{Field: e.name, Reason: err.Error()}
		}

		f := field.New(e.name, body)
		n, err := w.Write(f.Render(e.value.foldEncoding()))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// validateRenderedBody rejects a bare CR, a bare LF, or any control
// character other than tab in a rendered header body. A CRLF followed by a
// space or tab is a fold and is allowed. Text, TextList, and parameter
// values encode such bytes themselves; the values that carry the caller's
// string verbatim (Raw, URL, msg-ids, and address emails) can trip it.
func validateRenderedBody(body string) error {
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '\r' && i+2 < len(body) && body[i+1] == '\n' && (body[i+2] == ' ' || body[i+2] == '\t'):
			i++ // folding whitespace: skip the LF, the WSP is checked next
		case c == '\r' || c == '\n':
			return fmt.Errorf("body contains a bare line break")
		case c == '\t':
			// horizontal tab is allowed, e.g. inside folding whitespace
		case c < 0x20 || c == 0x7f:
			return fmt.Errorf("body contains control character 0x%02x", c)
		}
	}
	return nil
}

// --- typed convenience accessors for the standard headers ---

func (h *Header) SetFrom(mbs ...Mailbox) { h.Set(From, addressableList(mbs)) }
func (h *Header) SetTo(mbs ...Mailbox)   { h.Set(To, addressableList(mbs)) }
func (h *Header) SetCc(mbs ...Mailbox)   { h.Set(Cc, addressableList(mbs)) }
func (h *Header) SetBcc(mbs ...Mailbox)  { h.Set(Bcc, addressableList(mbs)) }
func (h *Header) SetReplyTo(mbs ...Mailbox) { h.Set(ReplyTo, addressableList(mbs)) }
func (h *Header) SetSender(mb Mailbox)   { h.Set(Sender, addressableList([]Mailbox{mb})) }

func addressableList(mbs []Mailbox) AddressList {
	as := make([]Addressable, len(mbs))
	for i, mb := range mbs {
		as[i] = mb
	}
	return AddressList{Addresses: as}
}

func (h *Header) SetSubject(s string) { h.Set(Subject, Text(s)) }

func (h *Header) SetDate(t DateTime) { h.Set(Date, t) }

func (h *Header) SetMessageID(id string) { h.Set(MessageID, MsgID(id)) }

func (h *Header) SetReferences(ids ...string) { h.Set(References, MessageIDList(ids)) }

func (h *Header) SetInReplyTo(ids ...string) { h.Set(InReplyTo, MessageIDList(ids)) }

func (h *Header) SetKeywords(ks ...string) { h.Set(Keywords, TextList(ks)) }

func (h *Header) SetContentLanguage(ls ...string) { h.Set(ContentLanguage, TextList(ls)) }

func (h *Header) SetContentLocation(u string) { h.Set(ContentLocation, URL(u)) }

func (h *Header) SetContentID(id string) { h.Set(ContentID, MsgID(id)) }

func (h *Header) SetComments(cs ...string) {
	h.Delete(Comments)
	for _, c := range cs {
		h.Add(Comments, Text(c))
	}
}

// SetContentType replaces the Content-Type header with the given media
// type and parameters, in the order given.
func (h *Header) SetContentType(mediaType string, params ...param.Param) {
	h.Set(ContentType, NewParameterized(param.New(mediaType, params...)))
}

// SetContentDisposition replaces the Content-Disposition header.
func (h *Header) SetContentDisposition(disposition string, params ...param.Param) {
	h.Set(ContentDisposition, NewParameterized(param.New(disposition, params...)))
}

// GetContentType returns the Content-Type header's param.Value, if set.
func (h *Header) GetContentType() (*param.Value, bool) {
	v, ok := h.Get(ContentType)
	if !ok {
		return nil, false
	}
	ct, ok := v.(Parameterized)
	if !ok {
		return nil, false
	}
	return ct.Value, true
}

// GetContentDisposition returns the Content-Disposition header's
// param.Value, if set.
func (h *Header) GetContentDisposition() (*param.Value, bool) {
	v, ok := h.Get(ContentDisposition)
	if !ok {
		return nil, false
	}
	cd, ok := v.(Parameterized)
	if !ok {
		return nil, false
	}
	return cd.Value, true
}

// SetBoundary sets the boundary parameter on an existing Content-Type
// header. The Content-Type header must already be set.
func (h *Header) SetBoundary(b string) {
	ct, ok := h.GetContentType()
	if !ok {
		return
	}
	ct.Set(param.Boundary, b)
	h.Set(ContentType, NewParameterized(ct))
}

func (h *Header) SetTransferEncoding(enc string) {
	h.Set(ContentTransferEncoding, Raw(enc))
}

// GetTransferEncoding returns the Content-Transfer-Encoding header's value,
// if set.
func (h *Header) GetTransferEncoding() (string, bool) {
	v, ok := h.Get(ContentTransferEncoding)
	if !ok {
		return "", false
	}
	r, ok := v.(Raw)
	if !ok {
		return "", false
	}
	return string(r), true
}

func (h *Header) SetMIMEVersion(v string) {
	h.Set(MIMEVersion, Raw(v))
}

// SetRaw sets a header field to a caller-supplied, pre-rendered body,
// bypassing folding and encoding entirely.
func (h *Header) SetRaw(name, body string) {
	h.Set(name, Raw(body))
}
