package marrow

import (
	"reflect"
	"time"
)

// Codec translates one SQL column type family between both wire encodings
// and a typed Go host value. Implementations are stateless, immutable values
// safe for unsynchronized concurrent use; the cursors they are handed are not.
//
// DecodeText and DecodeBinary consume exactly length bytes from the cursor,
// on success and on the documented error paths alike, and return (nil, nil)
// only for a zero-length DATETIME/TIMESTAMP field (absent value). They never
// return a partial value: the result is either a fully normalized host value,
// nil, or an error.
type Codec interface {
	// CanDecode reports whether this codec can decode a column of the given
	// descriptor into the requested host type.
	CanDecode(col Column, hostType reflect.Type) bool

	// CanEncode reports whether v is a value this codec can bind.
	CanEncode(v any) bool

	// DecodeText decodes a text-protocol field of length bytes.
	DecodeText(buf ReadCursor, length int, col Column, loc *time.Location) (any, error)

	// DecodeBinary decodes a binary-protocol field of length bytes.
	DecodeBinary(buf ReadCursor, length int, col Column, loc *time.Location) (any, error)

	// EncodeText appends the quoted text-protocol literal for v.
	EncodeText(w WriteCursor, v any) error

	// EncodeBinary appends the length-prefixed binary-protocol payload for v.
	EncodeBinary(w WriteCursor, v any) error

	// BinaryType is the wire type tag declared when binding this codec's
	// value as a binary statement parameter.
	BinaryType() DataType
}
