package app

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/scriptdisasm/internal/config"
	"github.com/retroenv/scriptdisasm/internal/disasm"
	"github.com/retroenv/scriptdisasm/internal/engine"
	"github.com/retroenv/scriptdisasm/internal/options"
)

func TestListEngines(t *testing.T) {
	registry, err := config.CreateRegistry(log.NewTestLogger(t))
	assert.NoError(t, err)

	buf := &bytes.Buffer{}
	assert.NoError(t, ListEngines(buf, registry))
	assert.Equal(t, "Available engines:\nchip8 CHIP-8\nscummv6 SCUMM v6\n", buf.String())
}

func TestListEngines_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	assert.NoError(t, ListEngines(buf, engine.NewRegistry()))
	assert.Equal(t, "Available engines:\n", buf.String())
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestListEngines_WriteError(t *testing.T) {
	registry := engine.NewRegistry()
	assert.NoError(t, registry.Register("x", "X", func() disasm.Disassembler { return nil }))

	err := ListEngines(failingWriter{}, registry)
	assert.True(t, errors.Is(err, errWrite))
}

func TestPrintInfo(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := config.CreateLoggerWithWriter(buf, false, false)

	opts := options.New()
	opts.Input = "script.bin"
	opts.Engine = "chip8"

	PrintInfo(logger, opts, "CHIP-8")
	output := buf.String()
	assert.Contains(t, output, "Processing script")
	assert.Contains(t, output, `"file":"script.bin"`)
	assert.Contains(t, output, `"engine":"chip8"`)

	buf.Reset()
	opts.Quiet = true
	PrintInfo(logger, opts, "CHIP-8")
	PrintBanner(logger, opts, "1.0.0", "", "")
	assert.Equal(t, 0, buf.Len())
}

func TestPrintBanner(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := config.CreateLoggerWithWriter(buf, false, false)

	PrintBanner(logger, options.New(), "1.0.0", "", "")
	assert.Contains(t, buf.String(), "scriptdisasm")
	assert.Contains(t, buf.String(), "1.0.0")
}
