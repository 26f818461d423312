// Package bodyanalyzer picks a Content-Transfer-Encoding for a part's body
// by estimating the wire size each candidate encoding would produce and
// choosing the smallest one that is still safe to send unencoded or in
// quoted-printable form.
package bodyanalyzer

import "github.com/zostay/go-email-compose/message/transfer"

// Encoding identifies which transfer encoding Analyze selected.
type Encoding int

const (
	// None means the body is 7-bit clean and needs no transfer encoding.
	None Encoding = iota
	// QuotedPrintable means the body should be quoted-printable encoded.
	QuotedPrintable
	// Base64 means the body should be base64 encoded: either it is not
	// text, or quoted-printable would cost more bytes than base64.
	Base64
)

// Result is the outcome of analyzing a body.
type Result struct {
	Encoding Encoding

	// ASCII is true if the body contains no byte with the high bit set.
	// A quoted-printable body that is still all-ASCII can keep an ASCII
	// charset; one that isn't needs a charset capable of representing the
	// original bytes (typically UTF-8).
	ASCII bool
}

// Name returns the Content-Transfer-Encoding header value for r.
func (r Result) Name() string {
	switch r.Encoding {
	case QuotedPrintable:
		return transfer.QuotedPrintable
	case Base64:
		return transfer.Base64
	default:
		return transfer.Bit7
	}
}

// Analyze inspects body and decides whether it can be sent as-is, needs
// quoted-printable encoding, or is cheaper to send as base64.
//
// isInline controls which bytes count as needing escape: an inline
// (header, RFC 2047 encoded-word) context also escapes literal tabs and
// question marks, and never soft-wraps at 76 columns the way a body does.
// A line longer than 998 bytes (the RFC 5322 hard limit) also forces
// encoding even if every byte is otherwise 7-bit clean.
//
// isText controls whether quoted-printable is even a candidate: it is only
// selected for text/* content by default. Non-text content that isn't 7-bit
// clean goes straight to base64, since quoted-printable's escaping is
// designed around mostly-ASCII prose, not arbitrary binary.
func Analyze(body []byte, isInline, isText bool) Result {
	base64Len := (len(body)*4/3 + 3) &^ 3

	qpLen := 0
	if !isInline {
		qpLen = len(body) / 76
	}

	isASCII := true
	needsEncoding := false
	lineLen := 0

	for pos, ch := range body {
		lineLen++

		switch {
		case ch >= 127 || ((ch == ' ' || ch == '\t') && (followedByNewline(body, pos) || pos == len(body)-1)):
			qpLen += 3
			needsEncoding = true
			if ch >= 127 {
				isASCII = false
			}
		case ch == '=' || (isInline && (ch == '\t' || ch == '?')):
			qpLen += 3
		default:
			if ch == '\n' {
				if lineLen > 997 {
					needsEncoding = true
				}
				lineLen = 0
			}
			qpLen++
		}
	}

	// the last line may have no trailing newline
	if lineLen > 997 {
		needsEncoding = true
	}

	if !needsEncoding {
		return Result{Encoding: None, ASCII: isASCII}
	}
	if isText && qpLen < base64Len {
		return Result{Encoding: QuotedPrintable, ASCII: isASCII}
	}
	return Result{Encoding: Base64, ASCII: isASCII}
}

// followedByNewline reports whether body[pos+1:] starts with a bare LF or a
// CRLF pair, matching the lookahead the quoted-printable encoder itself
// uses to decide whether trailing whitespace must be escaped.
func followedByNewline(body []byte, pos int) bool {
	rest := body[pos+1:]
	if len(rest) >= 1 && rest[0] == '\n' {
		return true
	}
	return len(rest) >= 2 && rest[0] == '\r' && rest[1] == '\n'
}
