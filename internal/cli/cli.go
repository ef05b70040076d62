// Package cli handles command line interface logic
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/scriptdisasm/internal/app"
	"github.com/retroenv/scriptdisasm/internal/config"
	"github.com/retroenv/scriptdisasm/internal/disasm"
	"github.com/retroenv/scriptdisasm/internal/engine"
	"github.com/retroenv/scriptdisasm/internal/fileprocessor"
	"github.com/retroenv/scriptdisasm/internal/options"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Process exit codes.
const (
	ExitSuccess = 0 // disassembly or engine listing succeeded
	ExitUsage   = 1 // help requested, input missing or invalid arguments
	ExitEngine  = 2 // engine missing, unknown or rejected the bytecode
	ExitFailure = 3 // any other error
)

const (
	dumpFlag     = "dump-disassembly"
	dumpToStdout = "-"
)

// BuildInfo contains the version information injected at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// UsageError represents an error that should show usage information
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string {
	return e.msg
}

type runner struct {
	opts     options.Program
	showHelp bool
	stdout   io.Writer
	stderr   io.Writer
	logger   *log.Logger
	build    BuildInfo
}

// Run parses the command line arguments, executes the requested operation and
// returns the process exit code.
func Run(args []string, stdout, stderr io.Writer, build BuildInfo) (code int) {
	r := &runner{
		opts:   options.New(),
		stdout: stdout,
		stderr: stderr,
		logger: log.NewNop(),
		build:  build,
	}

	defer func() {
		if p := recover(); p != nil {
			_, _ = fmt.Fprintf(stderr, "Unexpected failure: %v\n", p)
			code = ExitFailure
		}
	}()

	if args == nil {
		args = []string{} // cobra falls back to os.Args for nil
	}
	cmd := r.command()
	cmd.SetArgs(args)
	err := cmd.Execute()

	if r.showHelp {
		return ExitUsage
	}
	if err == nil {
		return ExitSuccess
	}
	return r.handleError(cmd, err)
}

func (r *runner) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "scriptdisasm [flags] <file to disassemble>",
		Short:         "Disassembler for game engine script bytecode",
		Version:       app.Version(r.build.Version, r.build.Commit, r.build.Date),
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return &UsageError{msg: err.Error()}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				r.opts.Input = args[0]
			}
			if err := normalizeOptions(cmd.Flags(), &r.opts); err != nil {
				return err
			}
			r.logger = config.CreateLoggerWithWriter(r.stderr, r.opts.Debug, r.opts.Quiet)
			return r.run()
		},
	}
	cmd.SetOut(r.stdout)
	cmd.SetErr(r.stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{msg: err.Error()}
	})

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&r.showHelp, "help", "?", false, "show this help")
	readOptionFlags(flags, &r.opts)
	return cmd
}

func readOptionFlags(flags *pflag.FlagSet, opts *options.Program) {
	flags.StringVarP(&opts.Engine, "engine", "e", "", "engine the script was compiled for")
	flags.BoolVarP(&opts.List, "list", "l", false, "list the supported engines")
	flags.StringVarP(&opts.DumpFile, dumpFlag, "d", "", "write the disassembly to the given file, printed on console if no name given")
	flags.Lookup(dumpFlag).NoOptDefVal = dumpToStdout
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "perform operations quietly")
	flags.BoolVar(&opts.NoHex, "nohex", false, "do not output instruction bytes as hex values in comments")
	flags.StringVar(&opts.Color, "color", options.ColorAuto, "colorize the disassembly (auto/always/never)")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the disassembly by decoding the input a second time")
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(flags *pflag.FlagSet, opts *options.Program) error {
	opts.Dump = flags.Changed(dumpFlag)
	if opts.DumpFile == dumpToStdout {
		opts.DumpFile = ""
	}

	opts.Color = strings.ToLower(opts.Color)
	switch opts.Color {
	case options.ColorAuto, options.ColorAlways, options.ColorNever:
		return nil
	default:
		return &UsageError{
			msg: fmt.Sprintf("unsupported color mode: %s. Valid options: auto, always, never", opts.Color),
		}
	}
}

func (r *runner) run() error {
	registry, err := config.CreateRegistry(r.logger)
	if err != nil {
		return fmt.Errorf("creating engine registry: %w", err)
	}

	if r.opts.List {
		return app.ListEngines(r.stdout, registry)
	}
	if r.opts.Input == "" {
		return &UsageError{}
	}
	if r.opts.Engine == "" {
		return fileprocessor.ErrNoEngine
	}
	description, ok := registry.Description(r.opts.Engine)
	if !ok {
		return &engine.UnknownEngineError{ID: r.opts.Engine}
	}

	app.PrintBanner(r.logger, r.opts, r.build.Version, r.build.Commit, r.build.Date)
	app.PrintInfo(r.logger, r.opts, description)
	return fileprocessor.ProcessFile(r.logger, registry, r.opts, r.stdout)
}

func (r *runner) handleError(cmd *cobra.Command, err error) int {
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		if usageErr.msg != "" {
			_, _ = fmt.Fprintf(r.stderr, "Error: %s\n\n", usageErr.msg)
		}
		_, _ = fmt.Fprint(r.stdout, cmd.UsageString())
		return ExitUsage
	}

	var unknown *engine.UnknownEngineError
	switch {
	case errors.Is(err, fileprocessor.ErrNoEngine):
		_, _ = fmt.Fprintln(r.stdout, "Engine must be specified.")
		return ExitEngine

	case errors.As(err, &unknown):
		_, _ = fmt.Fprintln(r.stdout, "Unknown engine.")
		r.logger.Debug("Requested engine is not registered", log.String("engine", unknown.ID))
		return ExitEngine
	}

	r.logger.Error("Disassembling failed", log.Err(err))
	return exitCode(err)
}

// exitCode maps an error returned by the processing to the process exit code.
func exitCode(err error) int {
	var (
		unknown   *engine.UnknownEngineError
		malformed *disasm.MalformedBytecodeError
		usageErr  *UsageError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usageErr):
		return ExitUsage
	case errors.Is(err, fileprocessor.ErrNoEngine),
		errors.As(err, &unknown),
		errors.As(err, &malformed):
		return ExitEngine
	default:
		return ExitFailure
	}
}
