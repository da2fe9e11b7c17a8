package marrow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marrowdb/marrow"
)

func TestMalformedLiteralError(t *testing.T) {
	t.Parallel()

	err := &marrow.MalformedLiteralError{
		Column:   marrow.Column{Type: marrow.TypeTime},
		Literal:  "12:AB:00",
		HostType: "TimeOfDay",
	}
	assert.Equal(t, "TIME value '12:AB:00' cannot be decoded as TimeOfDay", err.Error())
}

func TestUnsupportedTypeError(t *testing.T) {
	t.Parallel()

	err := &marrow.UnsupportedTypeError{
		Column:   marrow.Column{Type: marrow.TypeBlob},
		HostType: "TimeOfDay",
	}
	assert.Equal(t, "Data type BLOB cannot be decoded as TimeOfDay", err.Error())
}
