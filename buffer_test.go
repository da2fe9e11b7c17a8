package marrow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marrowdb/marrow"
)

func TestBuffer(t *testing.T) {
	t.Parallel()

	t.Run("sequential reads", func(t *testing.T) {
		t.Parallel()
		buf := marrow.NewBuffer([]byte{0x01, 0x4e, 0xec, 0x01, 0x00, 'a', 'b', 'c'})
		assert.Equal(t, byte(0x01), buf.ReadByte())
		assert.Equal(t, uint32(126030), buf.ReadUint32()) // little-endian
		assert.Equal(t, "abc", buf.ReadString(3))
		assert.Equal(t, 0, buf.Remaining())
	})

	t.Run("seek and skip", func(t *testing.T) {
		t.Parallel()
		buf := marrow.NewBuffer([]byte("0123456789"))
		buf.Skip(4)
		assert.Equal(t, 4, buf.Pos())
		saved := buf.Pos()
		assert.Equal(t, "45", buf.ReadString(2))
		buf.Seek(saved)
		assert.Equal(t, "45", buf.ReadString(2))
	})
}

func TestWriter(t *testing.T) {
	t.Parallel()

	var w marrow.Writer
	w.WriteByte(8)
	w.WriteUint32(126030)
	w.WriteASCII("ok")
	assert.Equal(t, []byte{8, 0x4e, 0xec, 0x01, 0x00, 'o', 'k'}, w.Bytes())
	assert.Equal(t, 7, w.Len())
}
