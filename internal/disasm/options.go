package disasm

import (
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/scriptdisasm/internal/writer"
)

// Option configures a disassembler.
type Option func(*Disasm)

// WithLogger sets the logger, a no-op logger is used by default.
func WithLogger(logger *log.Logger) Option {
	return func(dis *Disasm) {
		if logger != nil {
			dis.logger = logger
		}
	}
}

// WithWriterOptions sets the options used for rendering the listing.
func WithWriterOptions(options writer.Options) Option {
	return func(dis *Disasm) {
		dis.options = options
	}
}
