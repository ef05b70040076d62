// Package arch contains helpers shared by the engine plug-ins.
// It acts as a bridge between the engine specific decoders and the disassembler core.
package arch

import (
	"fmt"

	"github.com/retroenv/scriptdisasm/internal/disasm"
)

// Reader reads the bytes of a single instruction from the source data.
// All read errors are reported as malformed bytecode at the instruction start offset.
type Reader struct {
	data   []byte
	start  int
	pos    int
	opcode uint32
	hasOp  bool
}

// NewReader returns a reader for the instruction starting at the given offset.
func NewReader(data []byte, offset int) *Reader {
	return &Reader{
		data:  data,
		start: offset,
		pos:   offset,
	}
}

// SetOpcode sets the opcode that is reported in read errors.
func (r *Reader) SetOpcode(opcode uint32) {
	r.opcode = opcode
	r.hasOp = true
}

// Start returns the offset of the instruction start.
func (r *Reader) Start() int {
	return r.start
}

// Pos returns the offset of the next byte to read.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the amount of bytes left in the source.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Consumed returns the bytes read since the instruction start.
func (r *Reader) Consumed() []byte {
	return r.data[r.start:r.pos]
}

// Since returns the bytes read starting at the given offset.
func (r *Reader) Since(offset int) []byte {
	return r.data[offset:r.pos]
}

// Uint8 reads a single byte.
func (r *Reader) Uint8() (uint8, error) {
	b, err := r.Bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Uint16LE reads a little endian word.
func (r *Reader) Uint16LE() (uint16, error) {
	b, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0]) | uint16(b[1])<<8, nil
}

// Int16LE reads a signed little endian word.
func (r *Reader) Int16LE() (int16, error) {
	w, err := r.Uint16LE()
	return int16(w), err
}

// Uint16BE reads a big endian word.
func (r *Reader) Uint16BE() (uint16, error) {
	b, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

// Bytes reads the given amount of bytes. The returned slice aliases the source data.
func (r *Reader) Bytes(count int) ([]byte, error) {
	if count < 0 || r.pos+count > len(r.data) {
		return nil, r.Errorf("need %d bytes at offset $%04X, %d available", count, r.pos, r.Remaining())
	}
	b := r.data[r.pos : r.pos+count]
	r.pos += count
	return b, nil
}

// Errorf returns a malformed bytecode error for the current instruction.
func (r *Reader) Errorf(format string, args ...any) error {
	return &disasm.MalformedBytecodeError{
		Offset:    r.start,
		Opcode:    r.opcode,
		HasOpcode: r.hasOp,
		Reason:    fmt.Sprintf(format, args...),
	}
}
