// Package writer implements the line based disassembly listing output.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/retroenv/scriptdisasm/internal/instruction"
)

// maxHexBytes limits the amount of instruction bytes printed in the comment.
const maxHexBytes = 8

// codeColumnWidth is the width the instruction text is padded to before the comment.
const codeColumnWidth = 30

// Options of the writer.
type Options struct {
	HexBytes bool // print the instruction bytes as hex values after the offset
	Color    bool // style the listing using ANSI colors
}

// DefaultOptions returns the default listing options.
func DefaultOptions() Options {
	return Options{
		HexBytes: true,
	}
}

// Writer writes one listing line per decoded instruction.
type Writer struct {
	options Options
	writer  io.Writer

	codeStyle    lipgloss.Style
	commentStyle lipgloss.Style
}

// New creates a new listing writer.
func New(writer io.Writer, options Options) *Writer {
	w := &Writer{
		options: options,
		writer:  writer,
	}

	if options.Color {
		renderer := lipgloss.NewRenderer(writer)
		renderer.SetColorProfile(termenv.ANSI256)

		w.codeStyle = renderer.NewStyle().Foreground(lipgloss.Color("#98FB98"))
		w.commentStyle = renderer.NewStyle().Foreground(lipgloss.Color("#666666"))
	}
	return w
}

// WriteInstruction writes the line for the given instruction. The code is the
// engine specific text for the instruction.
func (w *Writer) WriteInstruction(ins instruction.Instruction, code string) error {
	comment := w.comment(ins)

	if w.options.Color {
		code = w.codeStyle.Render(fmt.Sprintf("%-*s", codeColumnWidth, code))
		comment = w.commentStyle.Render("; " + comment)
		if _, err := fmt.Fprintf(w.writer, "  %s %s\n", code, comment); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintf(w.writer, "  %-*s ; %s\n", codeColumnWidth, code, comment); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// WriteAll writes the lines for all instructions in order.
func (w *Writer) WriteAll(list []instruction.Instruction, format func(instruction.Instruction) string) error {
	for _, ins := range list {
		if err := w.WriteInstruction(ins, format(ins)); err != nil {
			return fmt.Errorf("writing instruction at offset $%04X: %w", ins.Offset(), err)
		}
	}
	return nil
}

func (w *Writer) comment(ins instruction.Instruction) string {
	comment := fmt.Sprintf("$%04X", ins.Offset())
	if !w.options.HexBytes {
		return comment
	}

	data := ins.Bytes()
	truncated := len(data) > maxHexBytes
	if truncated {
		data = data[:maxHexBytes]
	}

	buf := &strings.Builder{}
	buf.WriteString(comment)
	for _, b := range data {
		fmt.Fprintf(buf, " %02X", b)
	}
	if truncated {
		buf.WriteString(" ...")
	}
	return buf.String()
}
