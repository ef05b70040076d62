package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/scriptdisasm/internal/disasm"
)

func TestCreateRegistry(t *testing.T) {
	registry, err := CreateRegistry(log.NewTestLogger(t))
	assert.NoError(t, err)

	entries := registry.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, "chip8", entries[0].ID)
	assert.Equal(t, "CHIP-8", entries[0].Description)
	assert.Equal(t, "scummv6", entries[1].ID)
	assert.Equal(t, "SCUMM v6", entries[1].Description)

	for id := range registry.List() {
		dis, err := registry.Create(id)
		assert.NoError(t, err)
		assert.Equal(t, disasm.Unopened, dis.State())
	}
}

func TestCreateLoggerWithWriter(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		quiet     bool
		wantDebug bool
		wantInfo  bool
	}{
		{name: "default", wantInfo: true},
		{name: "debug", debug: true, wantDebug: true, wantInfo: true},
		{name: "quiet", quiet: true},
		{name: "debug wins over quiet", debug: true, quiet: true, wantDebug: true, wantInfo: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := CreateLoggerWithWriter(buf, tt.debug, tt.quiet)

			logger.Debug("debug message")
			logger.Info("info message")
			logger.Error("error message")

			output := buf.String()
			assert.Equal(t, tt.wantDebug, strings.Contains(output, "debug message"))
			assert.Equal(t, tt.wantInfo, strings.Contains(output, "info message"))
			assert.Contains(t, output, "error message")
		})
	}
}
