package marrow

import (
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// Time64ColumnWriter decodes raw wire fields for one temporal column straight
// into an Arrow Time64[us] builder, without an intermediate value slice.
//
// NOT thread-safe: the underlying Arrow builder mutates shared state, so each
// writer belongs to a single goroutine.
type Time64ColumnWriter struct {
	Builder *array.Time64Builder
	Col     Column
	Binary  bool // fields come from binary-protocol rows
	Loc     *time.Location
}

// WriteField decodes one field's raw bytes and appends the result. A nil
// decode (absent datetime) appends null, as does isNull.
func (w *Time64ColumnWriter) WriteField(data []byte, isNull bool) error {
	if isNull {
		w.Builder.AppendNull()
		return nil
	}

	buf := NewBuffer(data)
	var v any
	var err error
	if w.Binary {
		v, err = Time.DecodeBinary(buf, len(data), w.Col, w.Loc)
	} else {
		v, err = Time.DecodeText(buf, len(data), w.Col, w.Loc)
	}
	if err != nil {
		return err
	}
	if v == nil {
		w.Builder.AppendNull()
		return nil
	}

	t := v.(TimeOfDay)
	w.Builder.Append(arrow.Time64(t.NanoOfDay() / 1000))
	return nil
}

func (w *Time64ColumnWriter) ArrowType() arrow.DataType {
	return arrow.FixedWidthTypes.Time64us
}

// PreAllocate reserves builder capacity for the expected batch size.
func (w *Time64ColumnWriter) PreAllocate(expectedBatchSize int) {
	w.Builder.Reserve(expectedBatchSize)
}
