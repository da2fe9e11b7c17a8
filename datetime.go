package marrow

import (
	"fmt"
	"time"
)

// DateTimeParts is the component breakdown of a date-time literal. A nil
// *DateTimeParts result means the literal was the zero date-time sentinel
// ("0000-00-00 00:00:00"), which the protocol uses for an absent value.
type DateTimeParts struct {
	Year  int
	Month int
	Day   int
	Hour  int
	Min   int
	Sec   int
	Nano  int
}

// ParseDateTime parses a "YYYY-MM-DD[ HH:MM:SS[.F+]]" literal into its
// components. The fractional part may carry 1-9 digits and is right-padded
// with zeros to nanoseconds, so ".5" means 500ms. A zero date with a non-zero
// time is normalized to January 1st. loc is accepted for parity with callers
// that bind the literal to a zone; the wall-clock components are returned
// unchanged.
func ParseDateTime(literal string, loc *time.Location) (*DateTimeParts, error) {
	_ = loc
	var parts [7]int
	idx := 0
	fracLen := -1
	for i := 0; i < len(literal); i++ {
		b := literal[i]
		switch {
		case b == '-' || b == ' ' || b == ':':
			idx++
		case b == '.':
			idx++
			fracLen = 0
		case b >= '0' && b <= '9':
			if idx > 6 {
				return nil, fmt.Errorf("invalid date-time literal %q", literal)
			}
			if fracLen >= 0 {
				fracLen++
			}
			parts[idx] = parts[idx]*10 + int(b-'0')
		default:
			return nil, fmt.Errorf("invalid date-time literal %q", literal)
		}
	}
	if idx < 2 {
		return nil, fmt.Errorf("invalid date-time literal %q", literal)
	}

	if parts[0] == 0 && parts[1] == 0 && parts[2] == 0 {
		if parts[3] == 0 && parts[4] == 0 && parts[5] == 0 && parts[6] == 0 {
			return nil, nil // zero date-time, absent value
		}
		parts[1], parts[2] = 1, 1
	}

	if fracLen >= 0 {
		if fracLen == 0 || fracLen > 9 {
			return nil, fmt.Errorf("invalid date-time literal %q", literal)
		}
		for i := 0; i < 9-fracLen; i++ {
			parts[6] *= 10
		}
	}

	return &DateTimeParts{
		Year:  parts[0],
		Month: parts[1],
		Day:   parts[2],
		Hour:  parts[3],
		Min:   parts[4],
		Sec:   parts[5],
		Nano:  parts[6],
	}, nil
}

// parseTimeLiteral parses a strict bare time-of-day literal, HH:MM[:SS[.F+]],
// with a 24-hour hour field. Used by the string-column fallback path, where
// the value is an arbitrary text cell rather than a server-rendered TIME.
func parseTimeLiteral(literal string) (TimeOfDay, error) {
	digits2 := func(s string) (int, bool) {
		if len(s) < 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
			return 0, false
		}
		return int(s[0]-'0')*10 + int(s[1]-'0'), true
	}

	hour, ok := digits2(literal)
	if !ok || len(literal) < 5 || literal[2] != ':' {
		return TimeOfDay{}, fmt.Errorf("invalid time literal %q", literal)
	}
	min, ok := digits2(literal[3:])
	if !ok {
		return TimeOfDay{}, fmt.Errorf("invalid time literal %q", literal)
	}
	sec, nano := 0, 0
	rest := literal[5:]
	if len(rest) > 0 {
		if rest[0] != ':' {
			return TimeOfDay{}, fmt.Errorf("invalid time literal %q", literal)
		}
		sec, ok = digits2(rest[1:])
		if !ok {
			return TimeOfDay{}, fmt.Errorf("invalid time literal %q", literal)
		}
		rest = rest[3:]
		if len(rest) > 0 {
			if rest[0] != '.' || len(rest) < 2 || len(rest) > 10 {
				return TimeOfDay{}, fmt.Errorf("invalid time literal %q", literal)
			}
			for _, c := range []byte(rest[1:]) {
				if c < '0' || c > '9' {
					return TimeOfDay{}, fmt.Errorf("invalid time literal %q", literal)
				}
				nano = nano*10 + int(c-'0')
			}
			for i := 0; i < 9-(len(rest)-1); i++ {
				nano *= 10
			}
		}
	}

	t, err := NewTimeOfDay(hour, min, sec, nano)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time literal %q: %w", literal, err)
	}
	return t, nil
}
