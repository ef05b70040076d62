// Package instruction contains the decoded instruction model shared by all engines.
package instruction

import (
	"slices"
	"strings"
)

// Instruction represents a single decoded bytecode instruction.
// It is a value type, all slice data is copied on construction and on access.
type Instruction struct {
	offset   int
	opcode   uint32
	mnemonic string
	operands []Operand
	raw      []byte
}

// New returns a new instruction starting at the given source offset.
// The size of the instruction is the length of the raw bytes.
func New(offset int, opcode uint32, mnemonic string, raw []byte, operands ...Operand) Instruction {
	ops := make([]Operand, len(operands))
	for i, op := range operands {
		ops[i] = op.clone()
	}

	return Instruction{
		offset:   offset,
		opcode:   opcode,
		mnemonic: mnemonic,
		operands: ops,
		raw:      slices.Clone(raw),
	}
}

// Offset returns the byte position of the first instruction byte in the source.
func (i Instruction) Offset() int {
	return i.offset
}

// Size returns the number of bytes consumed by the instruction.
func (i Instruction) Size() int {
	return len(i.raw)
}

// End returns the offset of the first byte after the instruction.
func (i Instruction) End() int {
	return i.offset + len(i.raw)
}

// Opcode returns the raw numeric operation code.
func (i Instruction) Opcode() uint32 {
	return i.opcode
}

// Mnemonic returns the engine defined symbolic name of the opcode.
func (i Instruction) Mnemonic() string {
	return i.mnemonic
}

// Operands returns a copy of the decoded operands.
func (i Instruction) Operands() []Operand {
	ops := make([]Operand, len(i.operands))
	for j, op := range i.operands {
		ops[j] = op.clone()
	}
	return ops
}

// OperandCount returns the number of operands.
func (i Instruction) OperandCount() int {
	return len(i.operands)
}

// Operand returns the operand at the given index.
func (i Instruction) Operand(index int) Operand {
	return i.operands[index].clone()
}

// Bytes returns a copy of the bytes consumed by the instruction.
func (i Instruction) Bytes() []byte {
	return slices.Clone(i.raw)
}

// Equal returns whether both instructions decode to identical values.
func (i Instruction) Equal(other Instruction) bool {
	if i.offset != other.offset || i.opcode != other.opcode || i.mnemonic != other.mnemonic {
		return false
	}
	if !slices.Equal(i.raw, other.raw) {
		return false
	}
	return slices.EqualFunc(i.operands, other.operands, Operand.Equal)
}

// String returns the mnemonic followed by the comma separated operands.
func (i Instruction) String() string {
	if len(i.operands) == 0 {
		return i.mnemonic
	}

	buf := &strings.Builder{}
	buf.WriteString(i.mnemonic)
	buf.WriteByte(' ')
	for j, op := range i.operands {
		if j > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(op.String())
	}
	return buf.String()
}

// Equal returns whether both instruction lists contain identical instructions in the same order.
func Equal(a, b []Instruction) bool {
	return slices.EqualFunc(a, b, Instruction.Equal)
}
