package marrow

import "fmt"

const nanosPerDay = 24 * 60 * 60 * 1_000_000_000

// TimeOfDay is a wall-clock time with nanosecond precision and no calendar
// date, always normalized into a single 24-hour range. It is an immutable
// value type; the zero value is midnight.
type TimeOfDay struct {
	hour int
	min  int
	sec  int
	nano int
}

// NewTimeOfDay builds a TimeOfDay from its components, validating each
// against the 24-hour wall-clock range.
func NewTimeOfDay(hour, min, sec, nano int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("hour out of range [0,23]: %d", hour)
	}
	if min < 0 || min > 59 {
		return TimeOfDay{}, fmt.Errorf("minute out of range [0,59]: %d", min)
	}
	if sec < 0 || sec > 59 {
		return TimeOfDay{}, fmt.Errorf("second out of range [0,59]: %d", sec)
	}
	if nano < 0 || nano > 999_999_999 {
		return TimeOfDay{}, fmt.Errorf("nanosecond out of range [0,999999999]: %d", nano)
	}
	return TimeOfDay{hour: hour, min: min, sec: sec, nano: nano}, nil
}

// TimeOfDayFromNanos builds a TimeOfDay from a nanosecond-of-day count,
// wrapping values outside [0, 24h) back into range. Wrapping (rather than
// rejecting) keeps decoding total for every byte sequence the server can
// legally emit: the negative-duration projection of -00:00:00 lands exactly
// on 24h and wraps to midnight.
func TimeOfDayFromNanos(nanoOfDay int64) TimeOfDay {
	n := nanoOfDay % nanosPerDay
	if n < 0 {
		n += nanosPerDay
	}
	return TimeOfDay{
		hour: int(n / 3_600_000_000_000),
		min:  int(n / 60_000_000_000 % 60),
		sec:  int(n / 1_000_000_000 % 60),
		nano: int(n % 1_000_000_000),
	}
}

func (t TimeOfDay) Hour() int       { return t.hour }
func (t TimeOfDay) Minute() int     { return t.min }
func (t TimeOfDay) Second() int     { return t.sec }
func (t TimeOfDay) Nanosecond() int { return t.nano }

// NanoOfDay returns the time as nanoseconds since midnight.
func (t TimeOfDay) NanoOfDay() int64 {
	return int64(t.hour)*3_600_000_000_000 +
		int64(t.min)*60_000_000_000 +
		int64(t.sec)*1_000_000_000 +
		int64(t.nano)
}

// String renders HH:MM:SS, with a nanosecond suffix trimmed to the shortest
// of 3, 6 or 9 digits when the nanosecond component is non-zero.
func (t TimeOfDay) String() string {
	if t.nano == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.min, t.sec)
	}
	switch {
	case t.nano%1_000_000 == 0:
		return fmt.Sprintf("%02d:%02d:%02d.%03d", t.hour, t.min, t.sec, t.nano/1_000_000)
	case t.nano%1_000 == 0:
		return fmt.Sprintf("%02d:%02d:%02d.%06d", t.hour, t.min, t.sec, t.nano/1_000)
	default:
		return fmt.Sprintf("%02d:%02d:%02d.%09d", t.hour, t.min, t.sec, t.nano)
	}
}
