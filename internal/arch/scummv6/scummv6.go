// Package scummv6 provides the SCUMM v6 script bytecode engine.
//
// SCUMM v6 scripts are bytecode for a stack machine, every instruction starts
// with a one byte opcode followed by immediate operands. Opcodes that group
// several commands read a sub-op byte after the opcode.
//
// Decoding is fail-fast: an unknown opcode or sub-op, and operands running
// past the end of the script, stop the decoding with a
// disasm.MalformedBytecodeError that carries the instruction offset.
package scummv6

import (
	"fmt"
	"strings"

	"github.com/retroenv/scriptdisasm/internal/arch"
	"github.com/retroenv/scriptdisasm/internal/disasm"
	"github.com/retroenv/scriptdisasm/internal/instruction"
)

// Engine identification used for the registry.
const (
	Name        = "scummv6"
	Description = "SCUMM v6"
)

// String escape markers, they are followed by a code byte.
const (
	escapeMarker    = 0xff
	escapeMarkerAlt = 0xfe
)

// Compile-time check to ensure ScummV6 implements disasm.Decoder.
var _ disasm.Decoder = (*ScummV6)(nil)

// ScummV6 implements the disasm.Decoder interface for SCUMM v6 scripts.
type ScummV6 struct{}

// New returns a new unopened SCUMM v6 disassembler.
func New(opts ...disasm.Option) disasm.Disassembler {
	return disasm.New(Name, &ScummV6{}, opts...)
}

// DecodeInstruction decodes the instruction at the given offset.
func (s *ScummV6) DecodeInstruction(data []byte, offset int) (instruction.Instruction, error) {
	r := arch.NewReader(data, offset)

	b, err := r.Uint8()
	if err != nil {
		return instruction.Instruction{}, err
	}
	r.SetOpcode(uint32(b))

	op, ok := opcodes[b]
	if !ok {
		return instruction.Instruction{}, r.Errorf("unknown opcode")
	}

	var operands []instruction.Operand
	if op.subOps != nil {
		operands, err = readSubOp(r, op)
	} else {
		operands, err = readParams(r, op.params, nil)
	}
	if err != nil {
		return instruction.Instruction{}, err
	}

	return instruction.New(offset, uint32(b), op.name, r.Consumed(), operands...), nil
}

// FormatInstruction formats the instruction as mnemonic followed by the operands.
// For sub-op opcodes the sub-op name is appended to the mnemonic.
func (s *ScummV6) FormatInstruction(ins instruction.Instruction) string {
	name := ins.Mnemonic()
	ops := ins.Operands()

	op, ok := opcodes[byte(ins.Opcode())]
	if ok && op.subOps != nil && len(ops) > 0 {
		sub := op.subOps[byte(ops[0].Value)]
		name = name + "." + sub.name
		ops = ops[1:]
	}

	if len(ops) == 0 {
		return name
	}

	params := make([]string, len(ops))
	for i, operand := range ops {
		params[i] = operand.String()
	}
	return fmt.Sprintf("%s %s", name, strings.Join(params, ", "))
}

func readSubOp(r *arch.Reader, op opcode) ([]instruction.Operand, error) {
	b, err := r.Uint8()
	if err != nil {
		return nil, err
	}
	sub, ok := op.subOps[b]
	if !ok {
		return nil, r.Errorf("unknown %s sub-op $%02X", op.name, b)
	}

	operands := []instruction.Operand{instruction.Int(int64(b), b)}
	operands, err = readParams(r, op.subParams, operands)
	if err != nil {
		return nil, err
	}
	return readParams(r, sub.params, operands)
}

func readParams(r *arch.Reader, params []param, operands []instruction.Operand) ([]instruction.Operand, error) {
	for _, p := range params {
		operand, err := readParam(r, p)
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}
	return operands, nil
}

func readParam(r *arch.Reader, p param) (instruction.Operand, error) {
	start := r.Pos()

	switch p {
	case paramByte:
		b, err := r.Uint8()
		if err != nil {
			return instruction.Operand{}, err
		}
		return instruction.Int(int64(b), b), nil

	case paramWord:
		w, err := r.Uint16LE()
		if err != nil {
			return instruction.Operand{}, err
		}
		return instruction.Int(int64(w), r.Since(start)...), nil

	case paramByteVar:
		b, err := r.Uint8()
		if err != nil {
			return instruction.Operand{}, err
		}
		return variable(uint16(b), b), nil

	case paramWordVar:
		w, err := r.Uint16LE()
		if err != nil {
			return instruction.Operand{}, err
		}
		return variable(w, r.Since(start)...), nil

	case paramJump:
		rel, err := r.Int16LE()
		if err != nil {
			return instruction.Operand{}, err
		}
		target := int64(r.Pos()) + int64(rel)
		if target < 0 {
			return instruction.Operand{}, r.Errorf("jump target %d is before script start", target)
		}
		return instruction.Addr(target, r.Since(start)...), nil

	case paramString:
		text, err := readString(r)
		if err != nil {
			return instruction.Operand{}, err
		}
		return instruction.Str(text, r.Since(start)...), nil

	default:
		return instruction.Operand{}, r.Errorf("unsupported parameter type %d", p)
	}
}

// readString reads a zero terminated string. Escape sequences start with a marker
// byte and a code byte, all codes except 1, 2, 3 and 8 carry an additional word.
// The escape sequences are kept in the returned text.
func readString(r *arch.Reader) (string, error) {
	buf := &strings.Builder{}
	for {
		b, err := r.Uint8()
		if err != nil {
			return "", r.Errorf("unterminated string")
		}
		if b == 0 {
			return buf.String(), nil
		}
		buf.WriteByte(b)

		if b != escapeMarker && b != escapeMarkerAlt {
			continue
		}

		code, err := r.Uint8()
		if err != nil {
			return "", r.Errorf("unterminated string escape")
		}
		buf.WriteByte(code)

		switch code {
		case 1, 2, 3, 8:
		default:
			arg, err := r.Bytes(2)
			if err != nil {
				return "", r.Errorf("truncated string escape argument")
			}
			buf.Write(arg)
		}
	}
}

// variable returns a register operand for the encoded variable number.
func variable(number uint16, raw ...byte) instruction.Operand {
	var name string
	switch {
	case number&0x8000 != 0:
		name = fmt.Sprintf("bitvar%d", number&0x7fff)
	case number&0x4000 != 0:
		name = fmt.Sprintf("localvar%d", number&0x0fff)
	default:
		name = fmt.Sprintf("var%d", number&0x0fff)
	}

	operand := instruction.Reg(name)
	operand.Value = int64(number)
	operand.Raw = raw
	return operand
}
