package arch

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/scriptdisasm/internal/disasm"
)

func TestReader(t *testing.T) {
	data := []byte{0xaa, 0x01, 0x34, 0x12, 0xfe, 0xff, 0x12, 0x34}
	r := NewReader(data, 1)

	b, err := r.Uint8()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x01), b)

	w, err := r.Uint16LE()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), w)

	s, err := r.Int16LE()
	assert.NoError(t, err)
	assert.Equal(t, int16(-2), s)

	w, err = r.Uint16BE()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), w)

	assert.Equal(t, 1, r.Start())
	assert.Equal(t, 8, r.Pos())
	assert.Equal(t, 0, r.Remaining())
	assert.Len(t, r.Consumed(), 7)
	assert.Len(t, r.Since(4), 4)
}

func TestReader_Truncated(t *testing.T) {
	r := NewReader([]byte{0x00, 0x01, 0x02}, 1)
	r.SetOpcode(0x01)

	_, err := r.Uint8()
	assert.NoError(t, err)

	_, err = r.Uint16LE()
	var malformed *disasm.MalformedBytecodeError
	assert.True(t, errors.As(err, &malformed))
	assert.Equal(t, 1, malformed.Offset)
	assert.Equal(t, uint32(0x01), malformed.Opcode)
	assert.True(t, malformed.HasOpcode)

	// the failed read does not move the cursor
	assert.Equal(t, 2, r.Pos())
}
