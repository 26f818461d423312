package message

import (
	"time"

	"github.com/zostay/go-email-compose/message/boundary"
)

// Environment supplies the ambient, otherwise-nondeterministic inputs a
// serialized message needs: the current time for a synthesized Date header,
// a boundary generator for multipart parts that don't already have one, and
// the hostname for a synthesized Message-ID. Tests can substitute
// their own Environment to get reproducible output.
type Environment struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// Boundary generates multipart boundaries. Defaults to boundary.New().
	Boundary *boundary.Generator

	// Hostname returns the hostname used in a synthesized Message-ID.
	// Defaults to "localhost".
	Hostname func() string
}

// DefaultEnvironment returns an Environment backed by the real clock,
// crypto/rand-seeded boundaries, and the hostname "localhost".
func DefaultEnvironment() *Environment {
	return &Environment{
		Now:      time.Now,
		Boundary: boundary.New(),
		Hostname: defaultHostname,
	}
}

func defaultHostname() string {
	return "localhost"
}
