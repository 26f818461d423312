// Package header provides tooling for building email message headers. Most
// callers will use the typed Set* methods on Header, which accept a
// Go-native value (a DateTime wrapping a time.Time, a Mailbox, a plain
// string) and take care of
// folding and RFC 2047/2231 encoding when rendering. The field subpackage
// holds the lower-level line-folding and encoded-word primitives this
// package builds on.
package header
