// Package disasm implements the engine independent disassembler core.
// It owns the source lifecycle, the decode loop and the listing rendering,
// while engine plug-ins only decode and format single instructions.
package disasm

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/scriptdisasm/internal/instruction"
	"github.com/retroenv/scriptdisasm/internal/loader"
	"github.com/retroenv/scriptdisasm/internal/writer"
)

// Disassembler defines the contract every engine disassembler implements.
type Disassembler interface {
	// Open binds the disassembler to the bytecode file at the given path.
	Open(path string) error
	// Decode decodes the opened source into an ordered instruction sequence.
	Decode() ([]instruction.Instruction, error)
	// Render writes the listing of the decoded instructions to the given writer.
	Render(w io.Writer) error
	// Instructions returns the decoded instructions.
	Instructions() []instruction.Instruction
	// State returns the lifecycle state.
	State() State
	// Close releases the opened source.
	Close() error
}

// WriterConfigurer is implemented by disassemblers that support changing the listing format.
type WriterConfigurer interface {
	SetWriterOptions(options writer.Options)
}

// Decoder is implemented by engine plug-ins to decode a single bytecode dialect.
type Decoder interface {
	// DecodeInstruction decodes the instruction that starts at the given offset of data.
	// The returned instruction has to start at offset and consume at least one byte.
	DecodeInstruction(data []byte, offset int) (instruction.Instruction, error)
	// FormatInstruction returns the listing text of the instruction.
	FormatInstruction(ins instruction.Instruction) string
}

// Terminator is optionally implemented by decoders that define an end of script sentinel.
type Terminator interface {
	// Terminates returns whether decoding stops after the given instruction.
	Terminates(ins instruction.Instruction) bool
}

var (
	_ Disassembler     = &Disasm{}
	_ WriterConfigurer = &Disasm{}
)

// Disasm implements the Disassembler contract on top of an engine Decoder.
// An instance is not safe for concurrent use.
type Disasm struct {
	name    string
	decoder Decoder
	logger  *log.Logger
	options writer.Options

	state        State
	source       *loader.Source
	instructions []instruction.Instruction
}

// New creates a new unopened disassembler for the named engine.
func New(name string, decoder Decoder, opts ...Option) *Disasm {
	dis := &Disasm{
		name:    name,
		decoder: decoder,
		logger:  log.NewNop(),
		options: writer.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(dis)
	}
	return dis
}

// Name returns the engine name.
func (dis *Disasm) Name() string {
	return dis.name
}

// State returns the lifecycle state.
func (dis *Disasm) State() State {
	return dis.state
}

// SetWriterOptions sets the options used for rendering the listing.
func (dis *Disasm) SetWriterOptions(options writer.Options) {
	dis.options = options
}

// Open binds the disassembler to the bytecode file at the given path.
// It only validates that the file can be read, decoding is done by Decode.
func (dis *Disasm) Open(path string) error {
	if dis.state != Unopened {
		return &AlreadyOpenError{Path: path, State: dis.state}
	}

	src, err := loader.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &SourceNotFoundError{Path: path, Err: err}
		}
		return &SourceUnreadableError{Path: path, Err: err}
	}

	dis.source = src
	dis.state = Opened
	dis.logger.Debug("Opened source",
		log.String("engine", dis.name),
		log.String("file", path),
		log.Int64("size", src.Size()))
	return nil
}

// Decode decodes the complete opened source starting at offset 0.
// Errors returned by the engine decoder are passed through unchanged.
func (dis *Disasm) Decode() ([]instruction.Instruction, error) {
	if dis.state != Opened {
		return nil, &NotReadyError{Op: "decode", State: dis.state}
	}

	data, err := dis.source.ReadAll()
	if err != nil {
		return nil, &SourceUnreadableError{Path: dis.source.Path(), Err: err}
	}
	if err := dis.source.Close(); err != nil {
		return nil, &SourceUnreadableError{Path: dis.source.Path(), Err: err}
	}

	list, scanned, err := dis.decodeAll(data)
	if err != nil {
		return nil, err
	}

	dis.instructions = list
	dis.state = Decoded
	dis.logger.Debug("Decoded source",
		log.String("engine", dis.name),
		log.Int("instructions", len(list)),
		log.Int("scanned", scanned),
		log.Int("size", len(data)))

	return dis.Instructions(), nil
}

// decodeAll runs the decode loop and returns the instructions and the length of the scanned region.
func (dis *Disasm) decodeAll(data []byte) ([]instruction.Instruction, int, error) {
	terminator, _ := dis.decoder.(Terminator)

	var list []instruction.Instruction
	offset := 0
	for offset < len(data) {
		ins, err := dis.decoder.DecodeInstruction(data, offset)
		if err != nil {
			return nil, offset, err
		}
		if err := checkDecoded(ins, offset, len(data)); err != nil {
			return nil, offset, err
		}

		list = append(list, ins)
		offset = ins.End()

		if terminator != nil && terminator.Terminates(ins) {
			break
		}
	}

	if err := instruction.CheckPartition(list, 0, offset); err != nil {
		return nil, offset, fmt.Errorf("checking decoded instructions: %w", err)
	}
	return list, offset, nil
}

// checkDecoded validates that an engine returned an instruction that fits the decode cursor.
func checkDecoded(ins instruction.Instruction, offset, length int) error {
	switch {
	case ins.Offset() != offset:
		return &MalformedBytecodeError{Offset: offset,
			Reason: fmt.Sprintf("decoder returned instruction for offset $%04X", ins.Offset())}
	case ins.Size() == 0:
		return &MalformedBytecodeError{Offset: offset, Reason: "decoder returned empty instruction"}
	case ins.End() > length:
		return &MalformedBytecodeError{Offset: offset, Opcode: ins.Opcode(), HasOpcode: true,
			Reason: "instruction exceeds source length"}
	}
	return nil
}

// Render writes the listing of the decoded instructions to the given writer.
// It can be called any number of times after Decode.
func (dis *Disasm) Render(w io.Writer) error {
	if dis.state != Decoded {
		return &NotReadyError{Op: "render", State: dis.state}
	}

	lw := writer.New(w, dis.options)
	if err := lw.WriteAll(dis.instructions, dis.decoder.FormatInstruction); err != nil {
		return fmt.Errorf("rendering listing: %w", err)
	}
	return nil
}

// Instructions returns a copy of the decoded instruction list.
func (dis *Disasm) Instructions() []instruction.Instruction {
	if dis.instructions == nil {
		return nil
	}
	list := make([]instruction.Instruction, len(dis.instructions))
	copy(list, dis.instructions)
	return list
}

// Close releases the opened source. Calling it multiple times is allowed.
func (dis *Disasm) Close() error {
	if dis.source == nil {
		return nil
	}
	return dis.source.Close()
}
