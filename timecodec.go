package marrow

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Time is the TIME codec singleton. TimeCodec is stateless, so the one value
// serves every connection concurrently.
var Time = TimeCodec{}

const timeOfDayName = "TimeOfDay"

var timeOfDayType = reflect.TypeOf(TimeOfDay{})

// TimeCodec decodes and encodes wall-clock time-of-day values.
//
// The server's TIME type is a signed duration that can exceed 24 hours; this
// codec projects it onto a 24-hour wall clock. On the text path hour counts
// fold via modulo 24; on the binary path the day-count field is dropped. The
// two agree, because the binary protocol splits magnitudes beyond 24h into
// days plus an hour below 24. Negative durations are projected as "time until
// midnight", wrapping at exactly 24h (see TimeOfDayFromNanos).
type TimeCodec struct{}

var timeCompatibleTypes = map[DataType]bool{
	TypeTime:       true,
	TypeDateTime:   true,
	TypeTimestamp:  true,
	TypeVarString:  true,
	TypeVarchar:    true,
	TypeString:     true,
	TypeBlob:       true,
	TypeTinyBlob:   true,
	TypeMediumBlob: true,
	TypeLongBlob:   true,
}

func (TimeCodec) CanDecode(col Column, hostType reflect.Type) bool {
	return timeCompatibleTypes[col.Type] && hostType != nil && timeOfDayType.AssignableTo(hostType)
}

func (TimeCodec) CanEncode(v any) bool {
	_, ok := v.(TimeOfDay)
	return ok
}

func (TimeCodec) BinaryType() DataType {
	return TypeTime
}

// durationParts is the normalized result of parsing a signed duration
// literal. hours may exceed 24; nanos is already right-padded to nanoseconds.
type durationParts struct {
	negative bool
	hours    int
	minutes  int
	seconds  int
	nanos    int
}

// parseDuration parses an ASCII [-]H+:MM:SS[.F+] literal of exactly length
// bytes. On a malformed byte the cursor is rewound to the field start so the
// raw literal can be recovered; the returned error already carries it.
func (TimeCodec) parseDuration(buf ReadCursor, length int, col Column) (durationParts, error) {
	start := buf.Pos()
	malformed := func() (durationParts, error) {
		buf.Seek(start)
		literal := buf.ReadString(length)
		buf.Seek(start)
		return durationParts{}, &MalformedLiteralError{Column: col, Literal: literal, HostType: timeOfDayName}
	}

	var parts [4]int // hours, minutes, seconds, fraction magnitude
	negative := false
	idx := 0
	partLen := 0
	i := 0
	if length > 0 {
		if buf.ReadByte() == '-' {
			negative = true
			i = 1
		} else {
			buf.Seek(start)
		}
	}

	for ; i < length; i++ {
		b := buf.ReadByte()
		if b == ':' || b == '.' {
			idx++
			if idx > 3 {
				return malformed()
			}
			partLen = 0
			continue
		}
		if b < '0' || b > '9' {
			return malformed()
		}
		partLen++
		parts[idx] = parts[idx]*10 + int(b-'0')
	}

	// a bare hour value is insufficient
	if idx < 1 {
		return malformed()
	}

	// the fraction accumulated as a plain integer; right-pad to nanoseconds
	// so ".5" means 500ms, not 5ns
	if idx == 3 {
		for j := 0; j < 9-partLen; j++ {
			parts[3] *= 10
		}
	}

	return durationParts{
		negative: negative,
		hours:    parts[0],
		minutes:  parts[1],
		seconds:  parts[2],
		nanos:    parts[3],
	}, nil
}

func (c TimeCodec) DecodeText(buf ReadCursor, length int, col Column, loc *time.Location) (any, error) {
	switch col.Type {
	case TypeDateTime, TypeTimestamp:
		literal := buf.ReadString(length)
		parts, err := ParseDateTime(literal, loc)
		if err != nil {
			return nil, &MalformedLiteralError{Column: col, Literal: literal, HostType: timeOfDayName}
		}
		if parts == nil {
			return nil, nil
		}
		t, err := NewTimeOfDay(parts.Hour, parts.Min, parts.Sec, parts.Nano)
		if err != nil {
			return nil, &MalformedLiteralError{Column: col, Literal: literal, HostType: timeOfDayName}
		}
		return t, nil

	case TypeTime:
		start := buf.Pos()
		parts, err := c.parseDuration(buf, length, col)
		if err != nil {
			return nil, err
		}
		parts.hours %= 24
		if parts.negative {
			seconds := int64(24*60*60 - (parts.hours*3600 + parts.minutes*60 + parts.seconds))
			return TimeOfDayFromNanos(seconds*1_000_000_000 - int64(parts.nanos)), nil
		}
		t, err := NewTimeOfDay(parts.hours, parts.minutes, parts.seconds, parts.nanos)
		if err != nil {
			buf.Seek(start)
			literal := buf.ReadString(length)
			buf.Seek(start)
			return nil, &MalformedLiteralError{Column: col, Literal: literal, HostType: timeOfDayName}
		}
		return t, nil

	case TypeBlob, TypeTinyBlob, TypeMediumBlob, TypeLongBlob:
		if col.Binary {
			buf.Skip(length)
			return nil, &UnsupportedTypeError{Column: col, HostType: timeOfDayName}
		}
		// a blob with a text collation is a TEXT column
		return c.decodeStringFallback(buf, length, col, loc)

	case TypeVarString, TypeVarchar, TypeString:
		return c.decodeStringFallback(buf, length, col, loc)

	default:
		buf.Skip(length)
		return nil, &UnsupportedTypeError{Column: col, HostType: timeOfDayName}
	}
}

func (c TimeCodec) DecodeBinary(buf ReadCursor, length int, col Column, loc *time.Location) (any, error) {
	switch col.Type {
	case TypeDateTime, TypeTimestamp:
		if length == 0 {
			return nil, nil
		}
		buf.Skip(4) // year, month, day
		var hour, min, sec int
		var micros uint32
		if length > 4 {
			hour = int(buf.ReadByte())
			min = int(buf.ReadByte())
			sec = int(buf.ReadByte())
			if length > 7 {
				micros = buf.ReadUint32()
			}
		}
		t, err := NewTimeOfDay(hour, min, sec, int(micros)*1000)
		if err != nil {
			return nil, err
		}
		return t, nil

	case TypeTime:
		negate := buf.ReadByte() == 1
		var hour, min, sec int
		var micros uint32
		if length > 4 {
			buf.Skip(4) // day count, folded away (doc on TimeCodec)
			if length > 7 {
				hour = int(buf.ReadByte())
				min = int(buf.ReadByte())
				sec = int(buf.ReadByte())
				if length > 8 {
					micros = buf.ReadUint32()
				}
			}
		}
		if negate {
			seconds := int64(24*60*60 - (hour*3600 + min*60 + sec))
			return TimeOfDayFromNanos(seconds*1_000_000_000 - int64(micros)*1000), nil
		}
		t, err := NewTimeOfDay(hour%24, min, sec, int(micros)*1000)
		if err != nil {
			return nil, err
		}
		return t, nil

	case TypeBlob, TypeTinyBlob, TypeMediumBlob, TypeLongBlob:
		if col.Binary {
			buf.Skip(length)
			return nil, &UnsupportedTypeError{Column: col, HostType: timeOfDayName}
		}
		// string-typed columns travel as length-prefixed raw text on the
		// binary protocol too
		return c.decodeStringFallback(buf, length, col, loc)

	case TypeVarString, TypeVarchar, TypeString:
		return c.decodeStringFallback(buf, length, col, loc)

	default:
		buf.Skip(length)
		return nil, &UnsupportedTypeError{Column: col, HostType: timeOfDayName}
	}
}

// decodeStringFallback reinterprets a text cell as a temporal literal: a
// combined date-and-time when it contains a space, a bare time-of-day
// otherwise.
func (TimeCodec) decodeStringFallback(buf ReadCursor, length int, col Column, loc *time.Location) (any, error) {
	val := buf.ReadString(length)
	if strings.Contains(val, " ") {
		if loc == nil {
			loc = time.Local
		}
		parts, err := ParseDateTime(val, loc)
		if err != nil || parts == nil {
			return nil, &MalformedLiteralError{Column: col, Literal: val, HostType: timeOfDayName}
		}
		t, err := NewTimeOfDay(parts.Hour, parts.Min, parts.Sec, parts.Nano)
		if err != nil {
			return nil, &MalformedLiteralError{Column: col, Literal: val, HostType: timeOfDayName}
		}
		return t, nil
	}
	t, err := parseTimeLiteral(val)
	if err != nil {
		return nil, &MalformedLiteralError{Column: col, Literal: val, HostType: timeOfDayName}
	}
	return t, nil
}

func (TimeCodec) EncodeText(w WriteCursor, v any) error {
	val, ok := v.(TimeOfDay)
	if !ok {
		return fmt.Errorf("cannot encode %T as TIME", v)
	}

	s := fmt.Sprintf("%02d:%02d:%02d", val.Hour(), val.Minute(), val.Second())
	micros := val.Nanosecond() / 1000 // truncate, never round
	if micros > 0 {
		if micros%1000 == 0 {
			s += fmt.Sprintf(".%03d", micros/1000)
		} else {
			s += fmt.Sprintf(".%06d", micros)
		}
	}

	w.WriteByte('\'')
	w.WriteASCII(s)
	w.WriteByte('\'')
	return nil
}

func (TimeCodec) EncodeBinary(w WriteCursor, v any) error {
	val, ok := v.(TimeOfDay)
	if !ok {
		return fmt.Errorf("cannot encode %T as TIME", v)
	}

	nano := val.Nanosecond()
	if nano > 0 {
		w.WriteByte(12)
		w.WriteByte(0)   // negate flag
		w.WriteUint32(0) // day count
		w.WriteByte(byte(val.Hour()))
		w.WriteByte(byte(val.Minute()))
		w.WriteByte(byte(val.Second()))
		w.WriteUint32(uint32(nano / 1000)) // truncate, never round
	} else {
		w.WriteByte(8)
		w.WriteByte(0)
		w.WriteUint32(0)
		w.WriteByte(byte(val.Hour()))
		w.WriteByte(byte(val.Minute()))
		w.WriteByte(byte(val.Second()))
	}
	return nil
}
