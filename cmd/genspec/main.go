// Command genspec synthesizes a stellar absorption spectrum.
//
// Usage:
//
//	genspec [flags] [param-file]
//
// Without a parameter file it prompts for the wavelength interval,
// resolution and number of lines. The parameter file is either four
// whitespace-separated values (start end resolution lines) or an .hcl file.
//
// Examples:
//
//	genspec
//	genspec params.txt
//	genspec -seed 7 -plot spectrum.png -summary run.hcl
//	genspec -grid indexed -smooth 0.5 -db runs.db params.txt
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/peterh/liner"

	"github.com/cwbudde/algo-spectra/internal/app"
	"github.com/cwbudde/algo-spectra/internal/params"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, newTerminal)
	stop()
	os.Exit(code)
}

// inputFunc opens the interactive line reader and returns its cleanup.
type inputFunc func() (params.LineReader, func())

func newTerminal() (params.LineReader, func()) {
	l := liner.NewLiner()
	l.SetCtrlCAborts(true)
	return l, func() { _ = l.Close() }
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, input inputFunc) int {
	fs := flag.NewFlagSet("genspec", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var cfg app.Config
	fs.StringVar(&cfg.CSVPath, "out", "", "CSV output path (default "+app.DefaultCSVPath+" when no other output is set)")
	fs.StringVar(&cfg.PlotPath, "plot", "", "plot output path (.png, .jpg, .pdf, .svg)")
	fs.StringVar(&cfg.DBPath, "db", "", "SQLite archive path")
	fs.BoolVar(&cfg.Summary, "summary", false, "print spectrum statistics")
	fs.StringVar(&cfg.GridMode, "grid", "", "wavelength grid mode: stepped or indexed")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed (0 = fresh entropy per draw)")
	fs.Float64Var(&cfg.Smoothing, "smooth", -1, "instrumental smoothing sigma in wavelength units (0 = off)")
	fs.Float64Var(&cfg.LineWidth, "line-width", 0, "Gaussian line width in wavelength units")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", "text", "log format: text or json")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: genspec [flags] [param-file]\n\n")
		fmt.Fprintf(stderr, "Synthesizes a stellar absorption spectrum.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}
	cfg.ParamFile = fs.Arg(0)

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, stderr)

	var reader params.LineReader
	if cfg.ParamFile == "" {
		r, closeInput := input()
		defer closeInput()
		reader = r
	}

	if _, err := app.New(cfg, logger, stdout, reader).Run(ctx); err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			logger.Warn("Aborted.")
			return 130
		}
		logger.Error("Synthesis failed.", "error", err)
		return 1
	}
	return 0
}
