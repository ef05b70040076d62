package instruction

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNew_CopiesInput(t *testing.T) {
	raw := []byte{0x01, 0x34, 0x12}
	operand := Int(0x1234, raw[1:]...)
	ins := New(4, 0x01, "pushWord", raw, operand)

	raw[0] = 0xff
	operand.Raw[0] = 0xff

	assert.Equal(t, 4, ins.Offset())
	assert.Equal(t, 3, ins.Size())
	assert.Equal(t, 7, ins.End())
	assert.Equal(t, uint32(0x01), ins.Opcode())
	assert.Equal(t, "pushWord", ins.Mnemonic())
	assert.Equal(t, byte(0x01), ins.Bytes()[0])
	assert.Equal(t, byte(0x34), ins.Operand(0).Raw[0])
}

func TestInstruction_AccessorsReturnCopies(t *testing.T) {
	ins := New(0, 0x00, "pushByte", []byte{0x00, 0x05}, Int(5, 0x05))

	b := ins.Bytes()
	b[0] = 0xaa
	ops := ins.Operands()
	ops[0].Value = 99

	assert.Equal(t, byte(0x00), ins.Bytes()[0])
	assert.Equal(t, int64(5), ins.Operand(0).Value)
	assert.Equal(t, 1, ins.OperandCount())
}

func TestInstruction_String(t *testing.T) {
	tests := []struct {
		name string
		ins  Instruction
		want string
	}{
		{
			name: "no operands",
			ins:  New(0, 0x14, "add", []byte{0x14}),
			want: "add",
		},
		{
			name: "integer",
			ins:  New(0, 0x00, "pushByte", []byte{0x00, 0xff}, Int(255, 0xff)),
			want: "pushByte 255",
		},
		{
			name: "address",
			ins:  New(0, 0x73, "jump", []byte{0x73, 0x02, 0x00}, Addr(5, 0x02, 0x00)),
			want: "jump $0005",
		},
		{
			name: "string and register",
			ins:  New(0, 0xf000, "ld", []byte{0xf0, 0x07}, Reg("V0"), Str("a\x01")),
			want: `ld V0, "a\x01"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ins.String())
		})
	}
}

func TestOperandKind_String(t *testing.T) {
	assert.Equal(t, "integer", Integer.String())
	assert.Equal(t, "address", Address.String())
	assert.Equal(t, "string", String.String())
	assert.Equal(t, "register", Register.String())
	assert.Equal(t, "kind(9)", OperandKind(9).String())
}

func TestOperand_String(t *testing.T) {
	tests := []struct {
		name    string
		operand Operand
		want    string
	}{
		{"integer", Int(-5), "-5"},
		{"address", Addr(0x13), "$0013"},
		{"negative address", Addr(-10), "-$000A"},
		{"string", Str("hi\n"), `"hi\n"`},
		{"register", Reg("var12"), "var12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.operand.String())
		})
	}
}

func TestEqual(t *testing.T) {
	a := []Instruction{
		New(0, 0x00, "pushByte", []byte{0x00, 0x01}, Int(1, 0x01)),
		New(2, 0x14, "add", []byte{0x14}),
	}
	b := []Instruction{
		New(0, 0x00, "pushByte", []byte{0x00, 0x01}, Int(1, 0x01)),
		New(2, 0x14, "add", []byte{0x14}),
	}
	assert.True(t, Equal(a, b))

	b[1] = New(2, 0x15, "sub", []byte{0x15})
	assert.False(t, Equal(a, b))
	assert.False(t, Equal(a, a[:1]))
}

func TestCheckPartition(t *testing.T) {
	valid := []Instruction{
		New(0, 0x00, "pushByte", []byte{0x00, 0x01}),
		New(2, 0x14, "add", []byte{0x14}),
		New(3, 0x1a, "pop", []byte{0x1a}),
	}

	tests := []struct {
		name      string
		list      []Instruction
		length    int
		wantError bool
		wantIndex int
	}{
		{name: "empty source", list: nil, length: 0},
		{name: "full coverage", list: valid, length: 4},
		{name: "short coverage", list: valid, length: 5, wantError: true, wantIndex: 3},
		{name: "beyond source", list: valid, length: 3, wantError: true, wantIndex: 2},
		{
			name: "gap",
			list: []Instruction{
				New(0, 0x14, "add", []byte{0x14}),
				New(2, 0x14, "add", []byte{0x14}),
			},
			length:    3,
			wantError: true,
			wantIndex: 1,
		},
		{
			name:      "empty instruction",
			list:      []Instruction{New(0, 0x14, "add", nil)},
			length:    1,
			wantError: true,
			wantIndex: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPartition(tt.list, 0, tt.length)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}

			var partErr *PartitionError
			assert.True(t, errors.As(err, &partErr))
			assert.Equal(t, tt.wantIndex, partErr.Index)
		})
	}
}
