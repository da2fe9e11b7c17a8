package marrow

import "fmt"

// MalformedLiteralError reports a field whose bytes do not match the grammar
// the codec expected for the requested host type. The codec rewinds the read
// cursor to the field's start before returning it, so the raw literal is
// recoverable for diagnostics.
type MalformedLiteralError struct {
	Column   Column // column the field belongs to
	Literal  string // raw field bytes, re-read after rewind
	HostType string // host type name the decode targeted
}

func (e *MalformedLiteralError) Error() string {
	return fmt.Sprintf("%s value '%s' cannot be decoded as %s", e.Column.Type, e.Literal, e.HostType)
}

// UnsupportedTypeError reports a column whose server type (or storage kind)
// has no decode path for the requested host type. The codec skips the field
// bytes before returning it, so the cursor stays consistent for the columns
// that follow.
type UnsupportedTypeError struct {
	Column   Column
	HostType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("Data type %s cannot be decoded as %s", e.Column.Type, e.HostType)
}
