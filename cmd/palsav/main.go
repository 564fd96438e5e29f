package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/oy3o/palsav"
	"github.com/oy3o/palsav/internal/cli"
)

// main is the entrypoint for the palsav tool.
func main() {
	// Use a minimal logger until the flags are parsed.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(stdout, stderr io.Writer, args []string) error {
	config, shouldExit, err := cli.Parse(args, stderr)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	level := slog.LevelInfo
	if config.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("Arguments parsed.", "op", config.Op, "input", config.Input, "output", config.Output, "mode", config.Mode)

	switch config.Op {
	case cli.OpCompress:
		return compress(logger, config)
	case cli.OpDecompress:
		if err := decompress(logger, config); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Decompressed %s to %s\n", config.Input, config.Output)
		return nil
	case cli.OpInfo:
		return info(stdout, config)
	}
	return &cli.ExitError{Code: 2, Message: fmt.Sprintf("invalid operation: %s", config.Op)}
}

func compress(logger *slog.Logger, config *cli.Config) error {
	logger.Debug("Compressing payload.", "input", config.Input, "mode", config.Mode)
	c, err := palsav.FromPlainFile(config.Input, config.Mode)
	if err != nil {
		return fmt.Errorf("compress %s: %w", config.Input, err)
	}
	if err := c.WriteFile(config.Output); err != nil {
		return fmt.Errorf("write %s: %w", config.Output, err)
	}
	logger.Info("Container written.",
		"output", config.Output,
		"uncompressed_size", c.UncompressedSize(),
		"stage1_size", c.Stage1Size(),
		"size", c.Size(),
	)
	return nil
}

func decompress(logger *slog.Logger, config *cli.Config) error {
	c, err := palsav.ReadFile(config.Input)
	if err != nil {
		return fmt.Errorf("read %s: %w", config.Input, err)
	}
	logger.Debug("Container decoded.", "input", config.Input, "mode", c.Mode(), "body", c.Size()-palsav.HeaderSize)

	payload, err := c.Payload()
	if err != nil {
		return fmt.Errorf("decompress %s: %w", config.Input, err)
	}
	if err := os.WriteFile(config.Output, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", config.Output, err)
	}
	logger.Debug("Payload written.", "output", config.Output, "bytes", len(payload))
	return nil
}

func info(stdout io.Writer, config *cli.Config) error {
	f, err := os.Open(config.Input)
	if err != nil {
		return fmt.Errorf("read %s: %w", config.Input, err)
	}
	defer f.Close()

	h, err := palsav.ReadHeader(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", config.Input, err)
	}
	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", config.Input, err)
	}

	fmt.Fprintf(stdout, "file:              %s\n", config.Input)
	fmt.Fprintf(stdout, "mode:              %c (%s)\n", h.Mode.Byte(), h.Mode)
	fmt.Fprintf(stdout, "passes:            %d\n", h.Mode.Passes())
	fmt.Fprintf(stdout, "uncompressed size: %d\n", h.UncompressedSize)
	fmt.Fprintf(stdout, "stage1 size:       %d\n", h.Stage1Size)
	fmt.Fprintf(stdout, "body size:         %d\n", st.Size()-palsav.HeaderSize)
	return nil
}
