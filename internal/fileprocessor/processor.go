// Package fileprocessor handles the disassembly workflow for a single input file.
package fileprocessor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/scriptdisasm/internal/disasm"
	"github.com/retroenv/scriptdisasm/internal/engine"
	"github.com/retroenv/scriptdisasm/internal/options"
	"github.com/retroenv/scriptdisasm/internal/verification"
	"github.com/retroenv/scriptdisasm/internal/writer"
	"golang.org/x/term"
)

// ErrNoEngine is returned when no engine was selected.
var ErrNoEngine = errors.New("engine must be specified")

// ProcessFile creates the disassembler for the selected engine, decodes the input
// file and writes the listing if requested. The listing goes to stdout unless a
// dump file is set.
func ProcessFile(logger *log.Logger, registry *engine.Registry, opts options.Program, stdout io.Writer) error {
	if opts.Engine == "" {
		return ErrNoEngine
	}

	dis, err := registry.Create(opts.Engine)
	if err != nil {
		return fmt.Errorf("creating disassembler: %w", err)
	}
	defer func() { _ = dis.Close() }()

	if err := dis.Open(opts.Input); err != nil {
		return fmt.Errorf("opening input: %w", err)
	}

	list, err := dis.Decode()
	if err != nil {
		return fmt.Errorf("decoding %s: %w", opts.Input, err)
	}
	logger.Info("Decoded script",
		log.String("file", opts.Input),
		log.String("engine", opts.Engine),
		log.Int("instructions", len(list)))

	if opts.Verify {
		if err := verification.VerifyOutput(logger, registry, opts.Engine, opts.Input, dis); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		logger.Info("Verification successful")
	}

	if !opts.Dump {
		return nil
	}
	return dumpListing(dis, opts, stdout)
}

func dumpListing(dis disasm.Disassembler, opts options.Program, stdout io.Writer) (err error) {
	out := stdout
	if opts.DumpFile != "" {
		file, createErr := os.Create(opts.DumpFile)
		if createErr != nil {
			return fmt.Errorf("creating output file %s: %w", opts.DumpFile, createErr)
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("closing output file %s: %w", opts.DumpFile, closeErr)
			}
		}()
		out = file
	}

	if configurer, ok := dis.(disasm.WriterConfigurer); ok {
		configurer.SetWriterOptions(writer.Options{
			HexBytes: !opts.NoHex,
			Color:    UseColor(opts.Color, out),
		})
	}

	if err := dis.Render(out); err != nil {
		return fmt.Errorf("writing disassembly: %w", err)
	}
	return nil
}

// UseColor returns whether the listing written to w should be styled.
// In auto mode only terminals get colored output.
func UseColor(mode string, w io.Writer) bool {
	switch strings.ToLower(mode) {
	case options.ColorAlways:
		return true
	case options.ColorAuto:
		file, ok := w.(*os.File)
		return ok && term.IsTerminal(int(file.Fd()))
	default:
		return false
	}
}
