// Package options contains the program options.
package options

// Color modes for the listing output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Parameters contains file path options.
type Parameters struct {
	Input    string // bytecode file to disassemble
	DumpFile string // file to write the listing to, standard output if empty
}

// Flags contains behavior options.
type Flags struct {
	Engine string // engine identifier the script originates from
	List   bool   // list the supported engines
	Dump   bool   // write the disassembly listing
	Verify bool   // decode a second time and compare the results
	Debug  bool
	Quiet  bool
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	Color string // one of ColorAuto, ColorAlways, ColorNever
	NoHex bool   // omit the instruction bytes in the listing
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// New returns the program options with default values.
func New() Program {
	return Program{
		OutputFlags: OutputFlags{
			Color: ColorAuto,
		},
	}
}
