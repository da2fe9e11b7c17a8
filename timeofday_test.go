package marrow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marrowdb/marrow"
)

func TestNewTimeOfDay(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		v, err := marrow.NewTimeOfDay(23, 59, 59, 999_999_999)
		require.NoError(t, err)
		assert.Equal(t, 23, v.Hour())
		assert.Equal(t, 59, v.Minute())
		assert.Equal(t, 59, v.Second())
		assert.Equal(t, 999_999_999, v.Nanosecond())
	})

	t.Run("out of range", func(t *testing.T) {
		t.Parallel()
		cases := [][4]int{
			{24, 0, 0, 0},
			{-1, 0, 0, 0},
			{0, 60, 0, 0},
			{0, 0, 60, 0},
			{0, 0, 0, 1_000_000_000},
			{0, 0, 0, -1},
		}
		for _, c := range cases {
			_, err := marrow.NewTimeOfDay(c[0], c[1], c[2], c[3])
			assert.Error(t, err)
		}
	})
}

func TestTimeOfDayFromNanos(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   int64
		want string
	}{
		{"midnight", 0, "00:00:00"},
		{"plain", 11*3600_000_000_000 + 45*60_000_000_000 + 21_000_000_000, "11:45:21"},
		{"last nanosecond", 86_399_999_999_999, "23:59:59.999999999"},
		{"wraps at 24h", 86_400_000_000_000, "00:00:00"},
		{"negative wraps backwards", -1_000_000_000, "23:59:59"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, marrow.TimeOfDayFromNanos(tt.in).String())
		})
	}
}

func TestTimeOfDay_NanoOfDay(t *testing.T) {
	t.Parallel()

	v, err := marrow.NewTimeOfDay(11, 45, 21, 126_030_000)
	require.NoError(t, err)
	assert.Equal(t, v, marrow.TimeOfDayFromNanos(v.NanoOfDay()))
}

func TestTimeOfDay_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		h, m, s, n int
		want       string
	}{
		{9, 5, 3, 0, "09:05:03"},
		{9, 5, 3, 250_000_000, "09:05:03.250"},
		{9, 5, 3, 123_456_000, "09:05:03.123456"},
		{9, 5, 3, 123_456_789, "09:05:03.123456789"},
	}
	for _, tt := range tests {
		v, err := marrow.NewTimeOfDay(tt.h, tt.m, tt.s, tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, v.String())
	}
}
