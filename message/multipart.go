package message

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zostay/go-email-compose/message/header"
)

// Multipart is a message part with nested sub-parts. Its Content-Type must
// be multipart/* and must carry a boundary parameter; NewMultipart fills in
// a boundary automatically if one isn't already set.
type Multipart struct {
	header.Header

	parts []Part
}

// NewMultipart returns a Multipart with the given media type (which must
// begin with "multipart/") and parts. A boundary is generated using env's
// boundary generator.
func NewMultipart(env *Environment, mediaType string, parts ...Part) (*Multipart, error) {
	if !strings.HasPrefix(mediaType, "multipart/") {
		return nil, &InvariantViolation{Reason: fmt.Sprintf("multipart media type must start with multipart/, got %q", mediaType)}
	}

	m := &Multipart{parts: parts}
	m.SetContentType(mediaType)
	if env != nil && env.Boundary != nil {
		m.SetBoundary(env.Boundary.Generate())
	}
	return m, nil
}

// prepareHeader validates that this Multipart's Content-Type is multipart/*
// and carries a boundary parameter. NewMultipart sets both, but a caller
// could mutate the header afterward, so WriteTo (and Message.WriteTo for a
// root Multipart) checks again before WriteBody trusts it.
func (mm *Multipart) prepareHeader() error {
	ct, ok := mm.GetContentType()
	if !ok || ct.Type() != "multipart" {
		return &InvariantViolation{Reason: "multipart part must have a multipart/* Content-Type"}
	}
	if ct.Boundary() == "" {
		return &InvariantViolation{Reason: "multipart part must have a boundary parameter"}
	}
	return nil
}

// WriteTo writes the Multipart's header, a blank line, then each part
// separated by its boundary line, ending with the closing boundary.
func (mm *Multipart) WriteTo(w io.Writer) (int64, error) {
	if err := mm.prepareHeader(); err != nil {
		return 0, err
	}

	hn, err := mm.Header.WriteTo(w)
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

	bn, err := mm.WriteBody(w)
	return n + bn, err
}

// errBoundaryCollision is returned by a boundaryScanner when a part's
// content contains the boundary delimiter line.
var errBoundaryCollision = errors.New("part content collides with the multipart boundary")

// WriteBody writes each part separated by its boundary line, ending with
// the closing boundary. No header and no leading blank line are written.
// prepareHeader must have already validated the boundary (WriteTo and
// Message.WriteTo both guarantee this).
func (mm *Multipart) WriteBody(w io.Writer) (int64, error) {
	ct, _ := mm.GetContentType()
	boundary := ct.Boundary()

	var n int64
	for _, part := range mm.parts {
		bn, err := fmt.Fprintf(w, "--%s\r\n", boundary)
		n += int64(bn)
		if err != nil {
			return n, &SinkError{Err: err}
		}

		sw := newBoundaryScanner(w, boundary)
		pn, err := part.WriteTo(sw)
		n += pn
		if err != nil {
			if errors.Is(err, errBoundaryCollision) {
				return n, &InvariantViolation{Reason: fmt.Sprintf("boundary %q collides with part content", boundary)}
			}
			return n, err
		}

		bn, err = w.Write([]byte("\r\n"))
		n += int64(bn)
		if err != nil {
			return n, &SinkError{Err: err}
		}
	}

	bn, err := fmt.Fprintf(w, "--%s--\r\n", boundary)
	n += int64(bn)
	if err != nil {
		return n, &SinkError{Err: err}
	}

	return n, nil
}

// boundaryScanner wraps an io.Writer and reports errBoundaryCollision the
// moment a line starting with "--boundary" passes through it, implementing
// the generate-then-verify half of the boundary collision guarantee: a
// descendant whose encoded content happens to contain the boundary aborts
// serialization instead of silently producing an unparseable message. It
// holds only the last few bytes written, not the whole part, so it costs no
// more memory than the boundary string itself.
type boundaryScanner struct {
	w      io.Writer
	marker []byte
	carry  []byte
}

// newBoundaryScanner returns a boundaryScanner for the given boundary. The
// initial carry primes the scanner as though a newline had already been
// written, since the caller always writes the boundary line's own CRLF
// immediately before handing off to the wrapped part.
func newBoundaryScanner(w io.Writer, boundary string) *boundaryScanner {
	return &boundaryScanner{
		w:      w,
		marker: []byte("\n--" + boundary),
		carry:  []byte("\n"),
	}
}

func (s *boundaryScanner) Write(p []byte) (int, error) {
	buf := append(append([]byte(nil), s.carry...), p...)
	if bytes.Contains(buf, s.marker) {
		return 0, errBoundaryCollision
	}

	keep := len(s.marker) - 1
	if len(buf) > keep {
		buf = buf[len(buf)-keep:]
	}
	s.carry = buf

	return s.w.Write(p)
}

// IsMultipart always returns true.
func (mm *Multipart) IsMultipart() bool { return true }

// GetHeader returns the header for this part.
func (mm *Multipart) GetHeader() *header.Header { return &mm.Header }

// GetParts returns the sub-parts of this message.
func (mm *Multipart) GetParts() []Part { return mm.parts }

// MultipartAlternative returns a Multipart with Content-Type
// multipart/alternative and the given parts, typically a plain-text Leaf
// followed by an HTML Leaf presenting the same content.
func MultipartAlternative(env *Environment, parts ...Part) (*Multipart, error) {
	return NewMultipart(env, "multipart/alternative", parts...)
}

// MultipartMixed returns a Multipart with Content-Type multipart/mixed and
// the given parts, typically a body part followed by one or more
// attachments.
func MultipartMixed(env *Environment, parts ...Part) (*Multipart, error) {
	return NewMultipart(env, "multipart/mixed", parts...)
}
