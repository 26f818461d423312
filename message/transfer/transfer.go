// Package transfer implements the Content-Transfer-Encoding codecs: 7bit
// passthrough (with validation), quoted-printable, and base64. The Body
// Analyzer picks which of these applies to a given part; this package only
// knows how to run the chosen encoding.
package transfer

import (
	"io"

	"github.com/zostay/go-email-compose/message/header"
)

const (
	None            = ""                 // bytes are left as-is
	Bit7            = "7bit"             // bytes are left as-is; must validate as 7-bit
	Bit8            = "8bit"             // bytes are left as-is
	Binary          = "binary"           // bytes are left as-is
	QuotedPrintable = "quoted-printable" // bytes are transcoded to/from quoted-printable
	Base64          = "base64"           // bytes are transcoded to/from base64
)

// Transcoding is a pair of functions that transform to and from a transfer
// encoding.
type Transcoding struct {
	// Encoder returns an io.WriteCloser that encodes binary data written to
	// it and writes the encoded form to the given io.Writer. Close must be
	// called when writing is finished to flush any trailing state.
	Encoder func(io.Writer) io.WriteCloser

	// Decoder returns an io.Reader that decodes the encoded data read from
	// the given io.Reader back into binary form.
	Decoder func(io.Reader) io.Reader
}

// AsIsTranscoder is a no-op encoder/decoder, used for None, 8bit, and
// binary.
var AsIsTranscoder = Transcoding{NewAsIsEncoder, NewAsIsDecoder}

// Bit7Transcoder validates that the data is 7-bit clean on encode; it
// otherwise passes bytes through unchanged.
var Bit7Transcoder = Transcoding{NewSevenBitEncoder, NewAsIsDecoder}

// Transcodings maps a Content-Transfer-Encoding name to the codec that
// implements it. QuotedPrintable here defaults to the text/body encoder;
// ApplyTransferEncoding substitutes the attachment encoder for non-text
// parts, since quoted-printable's body/attachment distinction depends on
// the part's Content-Type, not just its Content-Transfer-Encoding name.
var Transcodings = map[string]Transcoding{
	None:            AsIsTranscoder,
	Bit7:            Bit7Transcoder,
	Bit8:            AsIsTranscoder,
	Binary:          AsIsTranscoder,
	QuotedPrintable: {NewQuotedPrintableEncoder, NewQuotedPrintableDecoder},
	Base64:          {NewBase64Encoder, NewBase64Decoder},
}

// ApplyTransferEncoding returns an io.WriteCloser that encodes bytes written
// to it according to the Content-Transfer-Encoding set on h, writing the
// result to w. If h has no recognized encoding set, bytes are passed
// through as-is. Close must be called on the returned io.WriteCloser when
// writing is finished.
//
// A Content-Transfer-Encoding of quoted-printable on a non-text part (per
// h's Content-Type) uses the attachment encoder, which escapes literal CR
// and LF instead of normalizing them, so binary content survives intact.
func ApplyTransferEncoding(h *header.Header, w io.Writer) io.WriteCloser {
	cte, ok := h.GetTransferEncoding()
	if !ok {
		return &writer{w, nil}
	}

	if cte == QuotedPrintable && !isTextContentType(h) {
		return NewQuotedPrintableAttachmentEncoder(w)
	}

	tc, hasCode := Transcodings[cte]
	if hasCode {
		return tc.Encoder(w)
	}

	return &writer{w, nil}
}

// isTextContentType reports whether h's Content-Type major type is "text",
// defaulting to true when no Content-Type is set.
func isTextContentType(h *header.Header) bool {
	ct, ok := h.GetContentType()
	return !ok || ct.Type() == "text"
}

// ApplyTransferDecoding returns an io.Reader that decodes bytes read from r
// according to the Content-Transfer-Encoding detected on h. Multipart
// containers never carry a meaningful transfer encoding of their own, so
// their body is always read as-is.
func ApplyTransferDecoding(h *header.Header, r io.Reader) io.Reader {
	if ct, ok := h.GetContentType(); ok && ct.Type() == "multipart" {
		return r
	}

	cte, ok := h.GetTransferEncoding()
	if !ok {
		return r
	}

	tc, hasCode := Transcodings[cte]
	if hasCode {
		return tc.Decoder(r)
	}

	return r
}
