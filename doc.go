// Package email builds RFC 5322/MIME email messages and serializes them to
// canonical wire bytes.
//
// The library is organized by concern: header holds typed representations
// of header fields and the RFC 2047/2231 rules for rendering them, transfer
// holds the Content-Transfer-Encoding codecs, bodyanalyzer picks which of
// those codecs a given body needs, boundary generates MIME multipart
// boundaries, and message ties all of these together into a tree of Part
// values (message.Leaf and message.Multipart) wrapped in a message.Message.
//
// Building a message means constructing that tree directly:
//
//	env := message.DefaultEnvironment()
//	body := message.NewInline("text/plain; charset=utf-8", "hello there")
//	msg := message.New(env, body)
//	msg.Header.SetSubject("hi")
//	msg.Header.SetFrom(header.NewMailbox("Me", "me@example.com"))
//	_, err := msg.WriteTo(os.Stdout)
//
// This module is a builder, not a parser: it has no representation of
// messages read off the wire, only of messages being constructed and
// serialized. Message.WriteTo fills in Date and Message-ID automatically if
// the caller hasn't already set them, using the clock, boundary generator,
// and hostname supplied by the Environment, and adds MIME-Version when the
// message is multipart or its body is not 7bit.
package email
