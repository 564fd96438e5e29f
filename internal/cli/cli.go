package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/oy3o/palsav"
)

// Operation names accepted as the first positional argument.
const (
	OpCompress   = "compress"
	OpDecompress = "decompress"
	OpInfo       = "info"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the parsed command line.
type Config struct {
	Op      string
	Input   string
	Output  string
	Mode    palsav.Mode
	Verbose bool
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("palsav", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
palsav - compress and decompress PlZ save containers.

Usage:
  palsav [options] compress   <input> <output>
  palsav [options] decompress <input> <output>
  palsav [options] info       <input>

Options:
`)
		flagSet.PrintDefaults()
	}

	modeFlag := flagSet.String("mode", "2", "Compression passes for 'compress'. Options: '1' or '2'.")
	verboseFlag := flagSet.Bool("v", false, "Enable debug logging.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	usageError := func(msg string) error {
		flagSet.Usage()
		return &ExitError{Code: 2, Message: msg}
	}

	if flagSet.NArg() == 0 {
		return nil, false, usageError("missing operation")
	}

	config := &Config{Op: flagSet.Arg(0), Verbose: *verboseFlag}
	want := 3
	switch config.Op {
	case OpCompress, OpDecompress:
	case OpInfo:
		want = 2
	default:
		return nil, false, usageError(fmt.Sprintf("invalid operation: %s", config.Op))
	}
	if flagSet.NArg() != want {
		return nil, false, usageError(fmt.Sprintf("%s expects %d path argument(s), got %d", config.Op, want-1, flagSet.NArg()-1))
	}
	config.Input = flagSet.Arg(1)
	if want == 3 {
		config.Output = flagSet.Arg(2)
	}

	if len(*modeFlag) != 1 {
		return nil, false, usageError(fmt.Sprintf("invalid mode %q: must be '1' or '2'", *modeFlag))
	}
	mode, err := palsav.ParseMode((*modeFlag)[0])
	if err != nil {
		return nil, false, usageError(fmt.Sprintf("invalid mode %q: must be '1' or '2'", *modeFlag))
	}
	config.Mode = mode

	return config, false, nil
}
