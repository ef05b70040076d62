package disasm

import "fmt"

// SourceNotFoundError is returned by Open when the source path does not exist.
type SourceNotFoundError struct {
	Path string
	Err  error
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source file '%s' not found", e.Path)
}

func (e *SourceNotFoundError) Unwrap() error {
	return e.Err
}

// SourceUnreadableError is returned when the source exists but can not be read.
type SourceUnreadableError struct {
	Path string
	Err  error
}

func (e *SourceUnreadableError) Error() string {
	return fmt.Sprintf("source file '%s' is not readable: %v", e.Path, e.Err)
}

func (e *SourceUnreadableError) Unwrap() error {
	return e.Err
}

// AlreadyOpenError is returned by Open when the disassembler was already opened.
type AlreadyOpenError struct {
	Path  string
	State State
}

func (e *AlreadyOpenError) Error() string {
	return fmt.Sprintf("can not open '%s': disassembler is already %s", e.Path, e.State)
}

// NotReadyError is returned when an operation is called in the wrong lifecycle state.
type NotReadyError struct {
	Op    string
	State State
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("can not %s: disassembler is %s", e.Op, e.State)
}

// MalformedBytecodeError is returned when bytes can not be decoded.
type MalformedBytecodeError struct {
	Offset    int
	Opcode    uint32
	HasOpcode bool // Opcode is only set when it could be determined
	Reason    string
}

func (e *MalformedBytecodeError) Error() string {
	if e.HasOpcode {
		return fmt.Sprintf("malformed bytecode at offset $%04X, opcode $%02X: %s", e.Offset, e.Opcode, e.Reason)
	}
	return fmt.Sprintf("malformed bytecode at offset $%04X: %s", e.Offset, e.Reason)
}
