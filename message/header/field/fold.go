// Package field provides the low-level pieces used to render a single header
// field: line folding and the RFC 2047 encoded-word encoder.
package field

import (
	"bytes"
	"errors"
	"strings"
)

const (
	DefaultFoldIndent = " " // indent placed before folded continuation lines

	// DefaultPreferredFoldLength is the line length the writer tries to stay
	// under (RFC 5322 recommends 78).
	DefaultPreferredFoldLength = 78

	// DefaultForcedFoldLength is the hard line length a header line must
	// never exceed (RFC 5322's 998 octet limit).
	DefaultForcedFoldLength = 998

	DoNotFold = -1 // fold lengths set to this mean "never fold"
)

var (
	// DefaultFoldEncoding is the fold policy used unless a field overrides it.
	DefaultFoldEncoding = &FoldEncoding{
		DefaultFoldIndent,
		DefaultPreferredFoldLength,
		DefaultForcedFoldLength,
	}

	// DoNotFoldEncoding disables folding entirely, used for Raw header values
	// the caller asserts are already correctly folded.
	DoNotFoldEncoding = &FoldEncoding{
		DefaultFoldIndent,
		DoNotFold,
		DoNotFold,
	}
)

var (
	ErrFoldIndentSpace   = errors.New("fold indent may only contain spaces and tabs")
	ErrFoldIndentTooShort = errors.New("fold indent must contain at least one space or tab")
	ErrFoldIndentTooLong  = errors.New("fold indent must be shorter than the preferred fold length")
	ErrFoldLengthTooLong  = errors.New("preferred fold length must be no longer than the forced fold length")
	ErrFoldLengthTooShort = errors.New("preferred and forced fold length cannot be too short")
	ErrDoNotFold          = errors.New("preferred and forced fold length must both be -1 if either is -1")
)

// FoldEncoding folds a header value's bytes onto CRLF-terminated lines no
// longer than a preferred length, forcing a break before a hard maximum.
type FoldEncoding struct {
	foldIndent          string
	preferredFoldLength int
	forcedFoldLength    int
}

// NewFoldEncoding builds a FoldEncoding, validating that foldIndent is pure
// whitespace and that the two length settings are internally consistent.
func NewFoldEncoding(foldIndent string, preferredFoldLength, forcedFoldLength int) (*FoldEncoding, error) {
	if ix := strings.IndexFunc(foldIndent, func(c rune) bool { return !isSpace(c) }); ix >= 0 {
		return nil, ErrFoldIndentSpace
	}
	if len(foldIndent) < 1 {
		return nil, ErrFoldIndentTooShort
	}
	if (preferredFoldLength == DoNotFold) != (forcedFoldLength == DoNotFold) {
		return nil, ErrDoNotFold
	}
	if preferredFoldLength != DoNotFold {
		if len(foldIndent) >= preferredFoldLength {
			return nil, ErrFoldIndentTooLong
		}
		if preferredFoldLength > forcedFoldLength {
			return nil, ErrFoldLengthTooLong
		}
		if preferredFoldLength < 3 || forcedFoldLength < 3 {
			return nil, ErrFoldLengthTooShort
		}
	}
	return &FoldEncoding{foldIndent, preferredFoldLength, forcedFoldLength}, nil
}

func isSpace(c rune) bool    { return c == ' ' || c == '\t' }
func isNonSpace(c rune) bool { return c != ' ' && c != '\t' }

// Fold takes an unfolded "Name: value" line (no trailing CRLF) and returns it
// broken across one or more CRLF-terminated lines, indented continuations.
func (vf *FoldEncoding) Fold(f []byte) []byte {
	var buf bytes.Buffer
	continuing := false

	writeChunk := func(chunk []byte) {
		if continuing && len(chunk) > 0 && !isSpace(rune(chunk[0])) {
			buf.WriteString(vf.foldIndent)
		}
		buf.Write(chunk)
		buf.WriteString("\r\n")
		continuing = true
	}

	if vf.preferredFoldLength == DoNotFold || len(f) < vf.preferredFoldLength {
		writeChunk(f)
		return buf.Bytes()
	}

	line := f
	for len(line) > 0 {
		fneed := len(line) > vf.preferredFoldLength-2
		if !fneed {
			writeChunk(line)
			break
		}

		var firstChar int
		if continuing {
			firstChar = bytes.IndexFunc(line, isNonSpace)
		} else {
			colon := bytes.IndexRune(line, ':')
			fc := bytes.IndexFunc(line[colon+1:], isNonSpace)
			if fc >= 0 {
				firstChar = fc + colon + 1
			} else {
				firstChar = 0
			}
		}
		if firstChar < 0 {
			firstChar = 0
		}

		upper := vf.preferredFoldLength - 2
		if upper > len(line) {
			upper = len(line)
		}

		if ix := bytes.LastIndexFunc(line[firstChar:upper], isSpace); ix >= 0 {
			cut := ix + firstChar
			writeChunk(line[:cut])
			line = bytes.TrimLeft(line[cut:], " \t")
			continue
		}

		if ix := bytes.IndexFunc(line[firstChar:], isSpace); ix >= 0 && ix+firstChar < vf.forcedFoldLength-2 {
			cut := ix + firstChar
			writeChunk(line[:cut])
			line = bytes.TrimLeft(line[cut:], " \t")
			continue
		}

		if len(line) > vf.forcedFoldLength-2 {
			cut := vf.preferredFoldLength - 2
			writeChunk(line[:cut])
			line = bytes.TrimLeft(line[cut:], " \t")
			continue
		}

		writeChunk(line)
		break
	}

	return buf.Bytes()
}
