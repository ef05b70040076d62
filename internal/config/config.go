// Package config handles application configuration and setup
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/scriptdisasm/internal/arch/chip8"
	"github.com/retroenv/scriptdisasm/internal/arch/scummv6"
	"github.com/retroenv/scriptdisasm/internal/disasm"
	"github.com/retroenv/scriptdisasm/internal/engine"
)

// CreateLogger creates a logger writing to standard error with appropriate settings.
func CreateLogger(debug, quiet bool) *log.Logger {
	return CreateLoggerWithWriter(os.Stderr, debug, quiet)
}

// CreateLoggerWithWriter creates a console logger writing to the given writer.
func CreateLoggerWithWriter(w io.Writer, debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Output = w
	cfg.TimeFormat = "-"
	if debug {
		cfg.Level = log.DebugLevel
		cfg.CallerInfo = true
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

type builtinEngine struct {
	id          string
	description string
	create      func(opts ...disasm.Option) disasm.Disassembler
}

var builtinEngines = []builtinEngine{
	{id: scummv6.Name, description: scummv6.Description, create: scummv6.New},
	{id: chip8.Name, description: chip8.Description, create: chip8.New},
}

// CreateRegistry returns a registry containing all built-in engines.
// The created disassemblers log to the given logger.
func CreateRegistry(logger *log.Logger) (*engine.Registry, error) {
	registry := engine.NewRegistry()

	for _, eng := range builtinEngines {
		create := eng.create
		factory := func() disasm.Disassembler {
			return create(disasm.WithLogger(logger))
		}
		if err := registry.Register(eng.id, eng.description, factory); err != nil {
			return nil, fmt.Errorf("registering engine: %w", err)
		}
	}

	logger.Debug("Registered engines", log.Int("count", registry.Len()))
	return registry, nil
}
