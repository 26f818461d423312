package message

import "fmt"

// InvariantViolation is returned when a message tree violates one of the
// structural rules a valid MIME message must follow, such as a Multipart
// whose Content-Type is not multipart/*, or a Multipart with no boundary
// parameter.
type InvariantViolation struct {
	Reason string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("message: invariant violation: %s", e.Reason)
}

// SinkError wraps an error returned by the io.Writer a message was being
// written to, distinguishing write failures downstream from malformed input
// upstream.
type SinkError struct {
	Err error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("message: write failed: %s", e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}
