// Package app provides the main application helpers for the disassembler.
package app

import (
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/scriptdisasm/internal/engine"
	"github.com/retroenv/scriptdisasm/internal/options"
)

// Version returns the formatted version string of the application.
func Version(version, commit, date string) string {
	return buildinfo.Version(version, commit, date)
}

// PrintBanner logs the application version unless quiet mode is enabled.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("scriptdisasm", log.String("version", Version(version, commit, date)))
}

// PrintInfo logs the information about the file being processed.
func PrintInfo(logger *log.Logger, opts options.Program, description string) {
	if opts.Quiet {
		return
	}
	logger.Info("Processing script",
		log.String("file", opts.Input),
		log.String("engine", opts.Engine),
		log.String("description", description),
	)
}

// ListEngines writes all registered engines sorted by identifier.
func ListEngines(w io.Writer, registry *engine.Registry) error {
	if _, err := fmt.Fprintln(w, "Available engines:"); err != nil {
		return fmt.Errorf("writing engine list: %w", err)
	}
	for id, description := range registry.List() {
		if _, err := fmt.Fprintf(w, "%s %s\n", id, description); err != nil {
			return fmt.Errorf("writing engine list: %w", err)
		}
	}
	return nil
}
