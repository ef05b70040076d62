package instruction

import (
	"fmt"
	"slices"
	"strconv"
)

// OperandKind defines the type of value an operand carries.
type OperandKind int

const (
	// Integer is an immediate numeric value.
	Integer OperandKind = iota
	// Address is a reference to a code or data address.
	Address
	// String is a text immediate embedded in the bytecode.
	String
	// Register is a named register or special location like a timer.
	Register
)

func (k OperandKind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Address:
		return "address"
	case String:
		return "string"
	case Register:
		return "register"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Operand is a single decoded operand of an instruction.
type Operand struct {
	Kind  OperandKind
	Value int64  // numeric value for Integer and Address operands
	Text  string // text for String and Register operands
	Raw   []byte // encoded bytes, empty for operands embedded in the opcode
}

// Int returns a new integer operand.
func Int(value int64, raw ...byte) Operand {
	return Operand{Kind: Integer, Value: value, Raw: raw}
}

// Addr returns a new address reference operand.
func Addr(address int64, raw ...byte) Operand {
	return Operand{Kind: Address, Value: address, Raw: raw}
}

// Str returns a new string operand.
func Str(text string, raw ...byte) Operand {
	return Operand{Kind: String, Text: text, Raw: raw}
}

// Reg returns a new register operand.
func Reg(name string) Operand {
	return Operand{Kind: Register, Text: name}
}

// String returns the operand formatted for a listing.
func (o Operand) String() string {
	switch o.Kind {
	case Address:
		if o.Value < 0 {
			return fmt.Sprintf("-$%04X", -o.Value)
		}
		return fmt.Sprintf("$%04X", o.Value)
	case String:
		return strconv.Quote(o.Text)
	case Register:
		return o.Text
	default:
		return strconv.FormatInt(o.Value, 10)
	}
}

// Equal returns whether both operands are identical.
func (o Operand) Equal(other Operand) bool {
	return o.Kind == other.Kind &&
		o.Value == other.Value &&
		o.Text == other.Text &&
		slices.Equal(o.Raw, other.Raw)
}

func (o Operand) clone() Operand {
	o.Raw = slices.Clone(o.Raw)
	return o
}
