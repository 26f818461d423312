package param

import (
	"fmt"
	"strings"
)

// Well-known Content-Type / Content-Disposition parameter names.
const (
	Boundary = "boundary"
	Charset  = "charset"
	Filename = "filename"
	Name     = "name"
)

// Param is a single name/value pair. Name comparisons are case-insensitive;
// Value is the logical (unencoded) string the caller wants to appear.
type Param struct {
	Name  string
	Value string
}

// Value is an ordered, RFC 2231-aware representation of a parameterized
// header value, e.g. a Content-Type or Content-Disposition body. Insertion
// order of parameters is preserved so that two renders of the same Value
// produce byte-identical output.
type Value struct {
	mediaType string
	params    []Param
}

// New builds a Value for the given media type (e.g. "text/plain" or
// "attachment"), optionally seeded with parameters in the given order.
func New(mediaType string, params ...Param) *Value {
	v := &Value{mediaType: mediaType}
	v.params = append(v.params, params...)
	return v
}

// MediaType returns the value's primary token, e.g. "text/plain".
func (v *Value) MediaType() string { return v.mediaType }

// Type returns the portion of MediaType before the slash, or "" if there is
// no slash (e.g. a bare Content-Disposition value like "attachment").
func (v *Value) Type() string {
	if ix := strings.IndexByte(v.mediaType, '/'); ix >= 0 {
		return v.mediaType[:ix]
	}
	return ""
}

// Subtype returns the portion of MediaType after the slash, or "" if there
// is none.
func (v *Value) Subtype() string {
	if ix := strings.IndexByte(v.mediaType, '/'); ix >= 0 {
		return v.mediaType[ix+1:]
	}
	return ""
}

// Change replaces the media type, keeping all parameters.
func (v *Value) Change(mediaType string) { v.mediaType = mediaType }

// Set adds or replaces a named parameter, preserving the position of an
// existing entry or appending a new one at the end.
func (v *Value) Set(name, value string) {
	for i := range v.params {
		if strings.EqualFold(v.params[i].Name, name) {
			v.params[i].Value = value
			return
		}
	}
	v.params = append(v.params, Param{Name: name, Value: value})
}

// Delete removes a named parameter, if present.
func (v *Value) Delete(name string) {
	for i := range v.params {
		if strings.EqualFold(v.params[i].Name, name) {
			v.params = append(v.params[:i], v.params[i+1:]...)
			return
		}
	}
}

// Parameter returns the value of a named parameter, or "" if not set.
func (v *Value) Parameter(name string) string {
	for _, p := range v.params {
		if strings.EqualFold(p.Name, name) {
			return p.Value
		}
	}
	return ""
}

// Parameters returns the parameters in insertion order.
func (v *Value) Parameters() []Param {
	return append([]Param{}, v.params...)
}

func (v *Value) Boundary() string { return v.Parameter(Boundary) }
func (v *Value) Charset() string  { return v.Parameter(Charset) }
func (v *Value) Filename() string { return v.Parameter(Filename) }

// isTokenChar reports whether b can appear unquoted in an RFC 2045 token.
func isTokenChar(b byte) bool {
	if b <= 0x20 || b >= 0x7f {
		return false
	}
	switch b {
	case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/', '[', ']', '?', '=':
		return false
	}
	return true
}

func isAttrChar(b byte) bool {
	return isTokenChar(b) && b != '*' && b != '\'' && b != '%'
}

func needsExtendedParam(value string) bool {
	if len(value) == 0 {
		return false
	}
	for i := 0; i < len(value); i++ {
		if c := value[i]; c < 0x20 || c >= 0x7f {
			return true
		}
	}
	return false
}

const extendedParamChunk = 60

// writeParam appends the rendering of a single parameter to b, choosing a
// plain `name="value"` form for short ASCII-safe values and falling back to
// RFC 2231 extended/continuation form (`name*0*=UTF-8''pct…; name*1*=…`)
// otherwise.
func writeParam(b *strings.Builder, name, value string) {
	if !needsExtendedParam(value) && len(value) <= extendedParamChunk {
		fmt.Fprintf(b, "%s=%s", name, quoteToken(value))
		return
	}

	enc := percentEncode(value)
	first := true
	n := 0
	for len(enc) > 0 {
		chunk := enc
		if len(chunk) > extendedParamChunk {
			chunk = chunk[:extendedParamChunk]
		}
		if !first {
			b.WriteString("; ")
		}
		if first {
			fmt.Fprintf(b, "%s*%d*=UTF-8''%s", name, n, chunk)
		} else {
			fmt.Fprintf(b, "%s*%d*=%s", name, n, chunk)
		}
		enc = enc[len(chunk):]
		first = false
		n++
	}
}

// percentEncode renders s using the RFC 2231/3986 percent-encoding scheme
// for attribute values, escaping every byte outside the attribute-char set.
func percentEncode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAttrChar(c) {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

// quoteToken renders value bare if it is a valid RFC 2045 token, or
// quoted-string otherwise.
func quoteToken(value string) string {
	plain := true
	for i := 0; i < len(value); i++ {
		if !isTokenChar(value[i]) {
			plain = false
			break
		}
	}
	if plain && len(value) > 0 {
		return value
	}

	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

// String renders "mediaType; name=value; ..." with no folding applied; the
// header writer is responsible for folding the result onto wire lines.
func (v *Value) String() string {
	var b strings.Builder
	b.WriteString(v.mediaType)
	for _, p := range v.params {
		b.WriteString("; ")
		writeParam(&b, p.Name, p.Value)
	}
	return b.String()
}

// Bytes is equivalent to []byte(v.String()).
func (v *Value) Bytes() []byte {
	return []byte(v.String())
}
