package marrow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marrowdb/marrow"
)

func TestParseDateTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		literal string
		want    *marrow.DateTimeParts
	}{
		{
			"full literal",
			"2023-01-05 11:45:21",
			&marrow.DateTimeParts{Year: 2023, Month: 1, Day: 5, Hour: 11, Min: 45, Sec: 21},
		},
		{
			"with fraction",
			"2023-01-05 11:45:21.5",
			&marrow.DateTimeParts{Year: 2023, Month: 1, Day: 5, Hour: 11, Min: 45, Sec: 21, Nano: 500_000_000},
		},
		{
			"full nanosecond fraction",
			"2023-01-05 11:45:21.123456789",
			&marrow.DateTimeParts{Year: 2023, Month: 1, Day: 5, Hour: 11, Min: 45, Sec: 21, Nano: 123_456_789},
		},
		{
			"date only",
			"2023-01-05",
			&marrow.DateTimeParts{Year: 2023, Month: 1, Day: 5},
		},
		{
			"zero date is absent",
			"0000-00-00 00:00:00",
			nil,
		},
		{
			"zero date with time normalizes to january first",
			"0000-00-00 11:45:21",
			&marrow.DateTimeParts{Month: 1, Day: 1, Hour: 11, Min: 45, Sec: 21},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := marrow.ParseDateTime(tt.literal, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("malformed literals", func(t *testing.T) {
		t.Parallel()
		for _, literal := range []string{
			"not a datetime!",
			"2023-01-05T11:45:21",
			"2023-01-05 11:45:21.",
			"2023-01-05 11:45:21.1234567890",
			"2023",
		} {
			_, err := marrow.ParseDateTime(literal, nil)
			assert.Error(t, err, literal)
		}
	})
}

func TestParseDateTime_FractionPadding(t *testing.T) {
	t.Parallel()

	// ".5" is half a second, not 5 nanoseconds
	got, err := marrow.ParseDateTime("2020-06-15 00:00:00.5", nil)
	require.NoError(t, err)
	assert.Equal(t, 500_000_000, got.Nano)

	got, err = marrow.ParseDateTime("2020-06-15 00:00:00.000001", nil)
	require.NoError(t, err)
	assert.Equal(t, 1_000, got.Nano)
}
