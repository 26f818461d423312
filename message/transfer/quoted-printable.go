package transfer

import (
	"io"
	"mime/quotedprintable"
)

const qpLineLimit = 76

const qpHexDigits = "0123456789ABCDEF"

// qpWriter implements quoted-printable encoding per RFC 2045, with the
// body/attachment distinction: a body normalizes bare LF to CRLF and only
// escapes whitespace immediately preceding a line break, while an
// attachment escapes literal CR and LF outright so the encoded form carries
// no line breaks other than the encoder's own soft line breaks.
//
// A handful of encoding decisions depend on the byte or two that follows
// (trailing whitespace before a line break, or the very last byte of the
// part), so the writer holds a small lookahead queue rather than the whole
// part in memory.
type qpWriter struct {
	w        io.Writer
	isBody   bool
	lineLen  int
	prevCh   byte
	havePrev bool
	pending  []byte
}

// NewQuotedPrintableEncoder returns a quoted-printable encoder for a text
// body: bare LF is normalized to CRLF and only whitespace immediately
// preceding a line break is escaped.
func NewQuotedPrintableEncoder(w io.Writer) io.WriteCloser {
	return &qpWriter{w: w, isBody: true}
}

// NewQuotedPrintableAttachmentEncoder returns a quoted-printable encoder for
// a non-text (or otherwise opaque) part: CR and LF are always escaped, so
// the only line breaks in the encoded output are soft line breaks.
func NewQuotedPrintableAttachmentEncoder(w io.Writer) io.WriteCloser {
	return &qpWriter{w: w, isBody: false}
}

func (q *qpWriter) Write(p []byte) (int, error) {
	q.pending = append(q.pending, p...)
	if err := q.drain(false); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (q *qpWriter) Close() error {
	return q.drain(true)
}

// drain resolves as many queued bytes as the available lookahead allows.
// final means no more bytes will ever arrive, which flushes whatever is
// left and makes end-of-input significant for the trailing-whitespace rule.
func (q *qpWriter) drain(final bool) error {
	for len(q.pending) > 0 {
		ch := q.pending[0]

		if ch == ' ' || ch == '\t' {
			have := len(q.pending)
			needLookahead := 2
			if q.isBody {
				needLookahead = 3
			}
			if have < needLookahead && !final {
				return nil // need more lookahead before deciding
			}
			isLastByte := final && have == 1
			escape := isLastByte
			if q.isBody {
				followedByLF := have >= 2 && q.pending[1] == '\n'
				followedByCRLF := have >= 3 && q.pending[1] == '\r' && q.pending[2] == '\n'
				escape = escape || followedByLF || followedByCRLF
			}
			var err error
			if escape {
				err = q.escapeByte(ch)
			} else {
				err = q.plainByte(ch)
			}
			if err != nil {
				return err
			}
			q.pending = q.pending[1:]
			q.havePrev, q.prevCh = true, ch
			continue
		}

		var err error
		switch {
		case ch == '=' || ch >= 127:
			err = q.escapeByte(ch)
		case !q.isBody && (ch == '\r' || ch == '\n'):
			err = q.escapeByte(ch)
		case q.isBody && ch == '\n':
			if q.havePrev && q.prevCh == '\r' {
				_, err = q.w.Write([]byte{'\n'})
			} else {
				_, err = q.w.Write([]byte("\r\n"))
			}
			q.lineLen = 0
		default:
			err = q.plainByte(ch)
		}
		if err != nil {
			return err
		}

		q.havePrev, q.prevCh = true, ch
		q.pending = q.pending[1:]
	}
	return nil
}

func (q *qpWriter) escapeByte(ch byte) error {
	// leave room for the "=" of a soft line break within qpLineLimit
	if q.lineLen+3 > qpLineLimit-1 {
		if _, err := q.w.Write([]byte("=\r\n")); err != nil {
			return err
		}
		q.lineLen = 0
	}
	_, err := q.w.Write([]byte{'=', qpHexDigits[ch>>4], qpHexDigits[ch&0xf]})
	q.lineLen += 3
	return err
}

func (q *qpWriter) plainByte(ch byte) error {
	if q.lineLen+1 > qpLineLimit-1 {
		if _, err := q.w.Write([]byte("=\r\n")); err != nil {
			return err
		}
		q.lineLen = 0
	}
	_, err := q.w.Write([]byte{ch})
	q.lineLen++
	return err
}

// NewQuotedPrintableDecoder reads bytes from r and returns them decoded from
// quoted-printable form. Decoding has no body/attachment distinction to
// make: RFC 2045 defines one decode algorithm regardless of which encoder
// produced the data.
func NewQuotedPrintableDecoder(r io.Reader) io.Reader {
	return quotedprintable.NewReader(r)
}
