package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/scriptdisasm/internal/instruction"
)

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// Pseudo instruction names for undecodable data.
const (
	wordDirective = ".word"
	byteDirective = ".byte"
)

type operandFunc func(w uint16) []instruction.Operand

// Opcode represents a matched CHIP-8 opcode with its operand extraction.
type Opcode struct {
	op       chip8.Opcode
	operands operandFunc
}

// Name returns the instruction mnemonic.
func (o Opcode) Name() string {
	return o.op.Instruction.Name
}

// Value returns the opcode value with all operand bits cleared.
func (o Opcode) Value() uint16 {
	return o.op.Info.Value
}

func vx(w uint16) instruction.Operand {
	return instruction.Reg(fmt.Sprintf("V%X", (w>>8)&0xF))
}

func vy(w uint16) instruction.Operand {
	return instruction.Reg(fmt.Sprintf("V%X", (w>>4)&0xF))
}

func addr(w uint16) instruction.Operand {
	return instruction.Addr(int64(w & 0x0FFF))
}

func kk(w uint16) instruction.Operand {
	return instruction.Int(int64(w & 0xFF))
}

func none(uint16) []instruction.Operand {
	return nil
}

func opAddr(w uint16) []instruction.Operand {
	return []instruction.Operand{addr(w)}
}

func opVx(w uint16) []instruction.Operand {
	return []instruction.Operand{vx(w)}
}

func opVxByte(w uint16) []instruction.Operand {
	return []instruction.Operand{vx(w), kk(w)}
}

func opVxVy(w uint16) []instruction.Operand {
	return []instruction.Operand{vx(w), vy(w)}
}

func opRegVx(name string) operandFunc {
	return func(w uint16) []instruction.Operand {
		return []instruction.Operand{instruction.Reg(name), vx(w)}
	}
}

func opVxReg(name string) operandFunc {
	return func(w uint16) []instruction.Operand {
		return []instruction.Operand{vx(w), instruction.Reg(name)}
	}
}

// operandDecoders maps the opcode values of the instruction set to the
// extraction of the operands encoded in the instruction word.
var operandDecoders = map[uint16]operandFunc{
	0x00E0: none,
	0x00EE: none,
	0x1000: opAddr,
	0x2000: opAddr,
	0x3000: opVxByte,
	0x4000: opVxByte,
	0x5000: opVxVy,
	0x6000: opVxByte,
	0x7000: opVxByte,
	0x8000: opVxVy,
	0x8001: opVxVy,
	0x8002: opVxVy,
	0x8003: opVxVy,
	0x8004: opVxVy,
	0x8005: opVxVy,
	0x8006: opVxVy,
	0x8007: opVxVy,
	0x800E: opVxVy,
	0x9000: opVxVy,
	0xA000: func(w uint16) []instruction.Operand {
		return []instruction.Operand{instruction.Reg("I"), addr(w)}
	},
	0xB000: func(w uint16) []instruction.Operand {
		return []instruction.Operand{instruction.Reg("V0"), addr(w)}
	},
	0xC000: opVxByte,
	0xD000: func(w uint16) []instruction.Operand {
		return []instruction.Operand{vx(w), vy(w), instruction.Int(int64(w & 0xF))}
	},
	0xE09E: opVx,
	0xE0A1: opVx,
	0xF007: opVxReg("DT"),
	0xF00A: opVxReg("K"),
	0xF015: opRegVx("DT"),
	0xF018: opRegVx("ST"),
	0xF01E: opRegVx("I"),
	0xF029: opRegVx("F"),
	0xF033: opRegVx("B"),
	0xF055: opRegVx("[I]"),
	0xF065: opVxReg("[I]"),
}

// lookupOpcode returns the opcode matching the instruction word.
// The first nibble selects the candidate opcodes of the instruction set.
func lookupOpcode(w uint16) (Opcode, bool) {
	for _, op := range chip8.Opcodes[w>>12] {
		if w&op.Info.Mask != op.Info.Value || op.Instruction == nil {
			continue
		}
		operands, ok := operandDecoders[op.Info.Value]
		if !ok {
			return Opcode{}, false
		}
		return Opcode{op: op, operands: operands}, true
	}
	return Opcode{}, false
}
