package field

import "fmt"

// Field is a single rendered "Name: Body" header line, folding applied on
// demand. A Field normally holds a decoded Name and Body pair, but it may
// instead hold a Raw value, supplied by the caller pre-folded and
// pre-encoded; Raw passes straight through the serializer with no further
// validation, which is the caller's responsibility to get right.
type Field struct {
	name string
	body string
	raw  []byte
}

// New constructs a Field from a decoded name and body.
func New(name, body string) *Field {
	return &Field{name: name, body: body}
}

// NewRaw constructs a Field that passes raw through unmodified, with no
// further folding or validation applied.
func NewRaw(raw []byte) *Field {
	return &Field{raw: raw}
}

// Name returns the field's name, if set via New or SetName. A Field
// constructed via NewRaw returns the empty string.
func (f *Field) Name() string { return f.name }

// Body returns the field's decoded body, if set via New or SetBody. A Field
// constructed via NewRaw returns the empty string.
func (f *Field) Body() string { return f.body }

// SetName replaces the field's name and clears any raw value.
func (f *Field) SetName(n string) {
	f.raw = nil
	f.name = n
}

// SetBody replaces the field's body and clears any raw value.
func (f *Field) SetBody(b string) {
	f.raw = nil
	f.body = b
}

// SetRaw replaces the field with a pre-rendered byte sequence, bypassing
// folding and encoding.
func (f *Field) SetRaw(raw []byte) {
	f.raw = raw
}

// Bytes renders the field's logical "Name: Body" value, unfolded. Use
// Render to obtain folded, CRLF-terminated wire bytes.
func (f *Field) Bytes() []byte {
	if f.raw != nil {
		return f.raw
	}
	return []byte(fmt.Sprintf("%s: %s", f.name, f.body))
}

// String renders the field the same as Bytes, as a string.
func (f *Field) String() string {
	return string(f.Bytes())
}

// Render folds the field onto CRLF-terminated wire lines using fe. A raw
// field is returned as-is with a single trailing CRLF appended.
func (f *Field) Render(fe *FoldEncoding) []byte {
	if f.raw != nil {
		return append(append([]byte{}, f.raw...), "\r\n"...)
	}
	if fe == nil {
		fe = DefaultFoldEncoding
	}
	return fe.Fold(f.Bytes())
}
