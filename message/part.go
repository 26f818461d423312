package message

import (
	"io"

	"github.com/zostay/go-email-compose/message/header"
)

// Part is implemented by the two kinds of node in a message tree: a Leaf
// carrying body content, or a Multipart carrying sub-parts.
type Part interface {
	io.WriterTo

	// WriteBody writes this part's body only: a Leaf's transfer-encoded
	// content, or a Multipart's boundary-delimited children. It does not
	// write this part's own header block or the blank line that follows
	// it — Message uses this to merge a root part's headers into the
	// top-level envelope header block instead of writing them twice.
	WriteBody(w io.Writer) (int64, error)

	// prepareHeader finalizes any header fields this part must settle
	// before its header is written or merged into an enclosing block,
	// such as a Leaf's auto-detected Content-Transfer-Encoding, and
	// validates any structural invariant that depends on those fields.
	prepareHeader() error

	// IsMultipart reports whether this Part is a Multipart (true) or a Leaf
	// (false).
	IsMultipart() bool

	// GetHeader returns the header for this part.
	GetHeader() *header.Header
}
