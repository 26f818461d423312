package message

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/zostay/go-email-compose/message/bodyanalyzer"
	"github.com/zostay/go-email-compose/message/header"
	"github.com/zostay/go-email-compose/message/header/param"
	"github.com/zostay/go-email-compose/message/transfer"
)

// Leaf is a message part that holds body content directly, as opposed to a
// Multipart which holds nested parts.
type Leaf struct {
	header.Header

	// Body is the content of this part, in its native (not yet
	// transfer-encoded) form.
	Body io.Reader
}

// NewLeaf returns a Leaf with the given header and body.
func NewLeaf(h header.Header, body io.Reader) *Leaf {
	return &Leaf{Header: h, Body: body}
}

// WriteTo writes the Leaf's header, a blank line, and its transfer-encoded
// body.
func (l *Leaf) WriteTo(w io.Writer) (int64, error) {
	if err := l.prepareHeader(); err != nil {
		return 0, err
	}

	hn, err := l.Header.WriteTo(w)
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

	bn, err := l.WriteBody(w)
	return n + bn, err
}

// WriteBody writes the Leaf's transfer-encoded body, with no header and no
// leading blank line.
//
// If a Content-Transfer-Encoding is already set on the header, the body is
// streamed straight through the corresponding encoder without ever being
// buffered in full, which matters for large attachments. prepareHeader must
// have already run (WriteTo and Message.WriteTo both guarantee this) so that
// an auto-detected encoding is already set by the time WriteBody runs.
func (l *Leaf) WriteBody(w io.Writer) (int64, error) {
	tw := transfer.ApplyTransferEncoding(&l.Header, w)
	var n int64
	if l.Body != nil {
		bn, err := io.Copy(tw, l.Body)
		n += bn
		if err != nil {
			_ = tw.Close()
			return n, wrapTransferError(err)
		}
	}
	if err := tw.Close(); err != nil {
		return n, wrapTransferError(err)
	}
	return n, nil
}

// wrapTransferError classifies an error from a transfer-encoding writer: a
// 7bit part that actually contains high-bit bytes is a structural problem
// with the message tree, not a failure of the underlying sink.
func wrapTransferError(err error) error {
	if errors.Is(err, transfer.ErrNotSevenBit) {
		return &InvariantViolation{Reason: err.Error()}
	}
	return &SinkError{Err: err}
}

// prepareHeader rejects a multipart/* Content-Type on a Leaf, then, if no
// Content-Transfer-Encoding is already set, buffers the body to run the body
// analyzer, picks an encoding, and sets the header accordingly. Callers that
// want to avoid buffering a large part should set the encoding themselves
// (NewAttachment does this unless given transfer.None).
func (l *Leaf) prepareHeader() error {
	if ct, ok := l.Header.GetContentType(); ok && ct.Type() == "multipart" {
		return &InvariantViolation{Reason: "leaf part must not have a multipart/* Content-Type"}
	}
	if _, ok := l.Header.GetTransferEncoding(); ok {
		return nil
	}
	body, err := l.analyzeAndEncode()
	if err != nil {
		return err
	}
	l.Body = body
	return nil
}

// analyzeAndEncode buffers the body, chooses a transfer encoding via
// bodyanalyzer, records it on the header, and returns the body ready to be
// re-read by WriteBody.
func (l *Leaf) analyzeAndEncode() (io.Reader, error) {
	var buf []byte
	if l.Body != nil {
		var err error
		buf, err = io.ReadAll(l.Body)
		if err != nil {
			return nil, err
		}
	}

	result := bodyanalyzer.Analyze(buf, false, l.isTextPart())
	l.Header.SetTransferEncoding(result.Name())

	return bytes.NewReader(buf), nil
}

// isTextPart reports whether this Leaf's Content-Type major type is "text",
// defaulting to true when no Content-Type has been set: quoted-printable is
// only selected for text by default (see bodyanalyzer.Analyze).
func (l *Leaf) isTextPart() bool {
	ct, ok := l.Header.GetContentType()
	return !ok || ct.Type() == "text"
}

// IsMultipart always returns false.
func (l *Leaf) IsMultipart() bool { return false }

// GetHeader returns the header for this part.
func (l *Leaf) GetHeader() *header.Header { return &l.Header }

// NewInline returns a Leaf suitable for a message's primary readable
// content: the given media type, a Content-Disposition of inline, and a
// transfer encoding chosen by the body analyzer.
func NewInline(mediaType, content string) *Leaf {
	var h header.Header
	h.SetContentType(mediaType)
	h.SetContentDisposition("inline")
	return NewLeaf(h, bytes.NewReader([]byte(content)))
}

// NewAttachment returns a Leaf suitable for a file attachment: a
// Content-Disposition of attachment naming filename, the given media type,
// and the given transfer encoding (use transfer.Base64 for arbitrary binary
// data, transfer.QuotedPrintable for text). When an encoding is given, the
// returned Leaf streams body straight through to its encoder without
// buffering it in full. transfer.None sets no Content-Transfer-Encoding, so
// the body analyzer picks one at write time, which buffers the whole body.
func NewAttachment(filename, mediaType string, body io.Reader, te string) *Leaf {
	var h header.Header
	h.SetContentType(mediaType)
	h.SetContentDisposition("attachment", param.Param{Name: param.Filename, Value: filename})
	if te != transfer.None {
		h.SetTransferEncoding(te)
	}
	return NewLeaf(h, body)
}

// AttachmentFile reads the file at fn from disk and returns an attachment
// Leaf for it, using filepath.Base(fn) as the attachment's filename.
func AttachmentFile(fn, mediaType, te string) (*Leaf, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	return NewAttachment(filepath.Base(fn), mediaType, f, te), nil
}
