package disasm

// State is the lifecycle state of a disassembler.
type State int

// Lifecycle states, a disassembler only moves forward through them.
const (
	Unopened State = iota
	Opened
	Decoded
)

func (s State) String() string {
	switch s {
	case Unopened:
		return "unopened"
	case Opened:
		return "opened"
	case Decoded:
		return "decoded"
	default:
		return "unknown"
	}
}
