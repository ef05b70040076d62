package chip8

import (
	"fmt"
	"strings"

	"github.com/retroenv/scriptdisasm/internal/arch"
	"github.com/retroenv/scriptdisasm/internal/disasm"
	"github.com/retroenv/scriptdisasm/internal/instruction"
)

// Engine identification used for the registry.
const (
	Name        = "chip8"
	Description = "CHIP-8"
)

// Compile-time check to ensure Chip8 implements disasm.Decoder.
var _ disasm.Decoder = (*Chip8)(nil)

// Chip8 implements the disasm.Decoder interface for CHIP-8 bytecode.
type Chip8 struct{}

// New returns a new unopened CHIP-8 disassembler.
func New(opts ...disasm.Option) disasm.Disassembler {
	return disasm.New(Name, &Chip8{}, opts...)
}

// DecodeInstruction decodes the instruction word at the given offset.
// Words that do not match any opcode are returned as .word data instruction,
// a single trailing byte as .byte data instruction.
func (c *Chip8) DecodeInstruction(data []byte, offset int) (instruction.Instruction, error) {
	r := arch.NewReader(data, offset)

	if r.Remaining() < opcodeSize {
		b, err := r.Uint8()
		if err != nil {
			return instruction.Instruction{}, err
		}
		return instruction.New(offset, uint32(b), byteDirective, r.Consumed(), instruction.Int(int64(b))), nil
	}

	w, err := r.Uint16BE()
	if err != nil {
		return instruction.Instruction{}, err
	}

	op, ok := lookupOpcode(w)
	if !ok {
		return instruction.New(offset, uint32(w), wordDirective, r.Consumed(), instruction.Int(int64(w))), nil
	}
	return instruction.New(offset, uint32(op.Value()), op.Name(), r.Consumed(), op.operands(w)...), nil
}

// FormatInstruction formats the instruction using the common CHIP-8 assembly syntax.
func (c *Chip8) FormatInstruction(ins instruction.Instruction) string {
	ops := ins.Operands()
	if len(ops) == 0 {
		return ins.Mnemonic()
	}

	params := make([]string, len(ops))
	for i, op := range ops {
		params[i] = formatOperand(ins.Mnemonic(), op)
	}
	return fmt.Sprintf("%s %s", ins.Mnemonic(), strings.Join(params, ", "))
}

func formatOperand(mnemonic string, op instruction.Operand) string {
	switch op.Kind {
	case instruction.Address:
		return fmt.Sprintf("$%03X", op.Value)
	case instruction.Integer:
		if mnemonic == wordDirective {
			return fmt.Sprintf("$%04X", op.Value)
		}
		return fmt.Sprintf("$%02X", op.Value)
	default:
		return op.String()
	}
}
