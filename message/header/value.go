package header

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/zostay/go-email-compose/message/header/field"
	"github.com/zostay/go-email-compose/message/header/param"
)

// Value is a header's semantic content: the in-memory representation from
// which the wire "Name: body" line is rendered. Every header field holds
// exactly one Value, so the caller never builds a header body string by
// hand. Implementations live in this package; it is a closed set.
type Value interface {
	renderBody() string
	foldEncoding() *field.FoldEncoding
}

// Text is free-form, unstructured text such as a Subject line. Non-ASCII or
// control characters trigger RFC 2047 encoded-word rendering automatically.
type Text string

func (t Text) renderBody() string               { return field.EncodeText(string(t), "UTF-8") }
func (t Text) foldEncoding() *field.FoldEncoding { return field.DefaultFoldEncoding }

var _ Value = Text("")

// TextList is a comma-separated list of plain tokens, used for headers like
// Keywords and Content-Language.
type TextList []string

func (tl TextList) renderBody() string {
	parts := make([]string, len(tl))
	for i, s := range tl {
		parts[i] = field.EncodeText(s, "UTF-8")
	}
	return strings.Join(parts, ", ")
}
func (tl TextList) foldEncoding() *field.FoldEncoding { return field.DefaultFoldEncoding }

var _ Value = TextList(nil)

// URL is a single bracket-wrapped URL, used for headers like Content-Location
// and List-Unsubscribe entries.
type URL string

func (u URL) renderBody() string               { return "<" + string(u) + ">" }
func (u URL) foldEncoding() *field.FoldEncoding { return field.DefaultFoldEncoding }

var _ Value = URL("")

// Raw is a header body supplied pre-rendered by the caller. It passes
// through to the wire unmodified and unfolded: the caller is responsible
// for ensuring it is valid RFC 5322 text with no bare CR or LF.
type Raw string

func (r Raw) renderBody() string               { return string(r) }
func (r Raw) foldEncoding() *field.FoldEncoding { return field.DoNotFoldEncoding }

var _ Value = Raw("")

// DateTime is the Value for the Date header and other date-bearing fields.
type DateTime struct{ time.Time }

// NewDateTime wraps t as a header Value.
func NewDateTime(t time.Time) DateTime { return DateTime{t} }

// DateTimeFromString parses body as a date, trying the standard RFC 5322
// grammar first and falling back to dateparse for the many informally
// formatted dates real-world mail and import sources produce.
func DateTimeFromString(body string) (DateTime, error) {
	if t, err := time.Parse(time.RFC1123Z, body); err == nil {
		return DateTime{t}, nil
	}
	t, err := dateparse.ParseAny(body)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{t}, nil
}

func (d DateTime) renderBody() string               { return d.Format(time.RFC1123Z) }
func (d DateTime) foldEncoding() *field.FoldEncoding { return field.DefaultFoldEncoding }

var _ Value = DateTime{}

// MsgID is a single RFC 5322 msg-id, rendered bracket-wrapped unless the
// caller already supplied the brackets. It is named MsgID rather than
// MessageID to avoid colliding with the MessageID header name constant.
type MsgID string

func (m MsgID) renderBody() string               { return bracketMsgID(string(m)) }
func (m MsgID) foldEncoding() *field.FoldEncoding { return field.DefaultFoldEncoding }

var _ Value = MsgID("")

// bracketMsgID wraps id in angle brackets unless it is already wrapped.
func bracketMsgID(id string) string {
	if strings.HasPrefix(id, "<") && strings.HasSuffix(id, ">") {
		return id
	}
	return "<" + id + ">"
}

// MessageIDList is the Value for References and In-Reply-To, which may
// carry more than one msg-id separated by whitespace.
type MessageIDList []string

func (ml MessageIDList) renderBody() string {
	parts := make([]string, len(ml))
	for i, id := range ml {
		parts[i] = bracketMsgID(id)
	}
	return strings.Join(parts, " ")
}
func (ml MessageIDList) foldEncoding() *field.FoldEncoding { return field.DefaultFoldEncoding }

var _ Value = MessageIDList(nil)

// Parameterized is the Value for Content-Type and Content-Disposition,
// backed by a param.Value so its parameters render using RFC 2231 when
// needed. It is named Parameterized rather than ContentType to avoid
// colliding with the ContentType header name constant.
type Parameterized struct {
	*param.Value
}

// NewParameterized wraps a param.Value as a header Value.
func NewParameterized(v *param.Value) Parameterized { return Parameterized{v} }

func (c Parameterized) renderBody() string               { return c.Value.String() }
func (c Parameterized) foldEncoding() *field.FoldEncoding { return field.DefaultFoldEncoding }

var _ Value = Parameterized{}
