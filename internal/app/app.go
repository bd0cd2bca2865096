// Package app wires parameter acquisition, synthesis and result sinks into
// the genspec command.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/cwbudde/algo-spectra/dsp/synth"
	"github.com/cwbudde/algo-spectra/internal/params"
	"github.com/cwbudde/algo-spectra/sink"
)

// App runs one synthesis from a Config.
type App struct {
	cfg    Config
	logger *slog.Logger
	stdout io.Writer
	input  params.LineReader
}

// New creates an App. input is only consulted when cfg.ParamFile is empty.
func New(cfg Config, logger *slog.Logger, stdout io.Writer, input params.LineReader) *App {
	return &App{cfg: cfg, logger: logger, stdout: stdout, input: input}
}

// Run acquires parameters, synthesizes the spectrum and writes every
// configured sink. It returns the synthesized result.
func (a *App) Run(ctx context.Context) (*synth.Result, error) {
	p, err := a.acquire()
	if err != nil {
		return nil, err
	}
	if err := p.Request.Validate(); err != nil {
		return nil, err
	}

	opts, err := a.cfg.synthOptions(p)
	if err != nil {
		return nil, err
	}
	s := synth.New(a.cfg.sampler(), opts...)
	a.logger.Debug("Synthesizer configured.", "config", fmt.Sprintf("%+v", s.Config()))

	res, err := s.Synthesize(p.Request)
	if err != nil {
		return nil, err
	}
	a.logger.Info("Spectrum synthesized.",
		"lines", len(res.Lines),
		"points", res.Len(),
		"elapsed", res.Elapsed,
		"seconds", res.Elapsed.Seconds())

	sinks, closeSinks, err := a.sinks()
	if err != nil {
		return nil, err
	}
	defer closeSinks()

	a.logger.Debug("Writing results.", "sinks", len(sinks))
	if err := sinks.Write(ctx, res); err != nil {
		return nil, err
	}
	a.logger.Info("Done.")
	return res, nil
}

func (a *App) acquire() (params.Params, error) {
	if a.cfg.ParamFile != "" {
		a.logger.Debug("Loading parameter file.", "path", a.cfg.ParamFile)
		return params.LoadFile(a.cfg.ParamFile)
	}
	if a.input == nil {
		return params.Params{}, errors.New("app: no parameter file and no interactive input")
	}
	req, err := params.NewPrompter(a.input).Ask()
	if err != nil {
		return params.Params{}, err
	}
	return params.Params{Request: req}, nil
}

func (a *App) sinks() (sink.Multi, func(), error) {
	var (
		out     sink.Multi
		closers []func() error
	)
	closeAll := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				a.logger.Warn("Closing sink failed.", "error", err)
			}
		}
	}

	csvPath := a.cfg.CSVPath
	if csvPath == "" && a.cfg.PlotPath == "" && a.cfg.DBPath == "" && !a.cfg.Summary {
		csvPath = DefaultCSVPath
	}
	if csvPath != "" {
		out = append(out, sink.CSVFile{Path: csvPath})
		a.logger.Debug("CSV output enabled.", "path", csvPath)
	}
	if a.cfg.PlotPath != "" {
		out = append(out, sink.NewPlot(a.cfg.PlotPath))
		a.logger.Debug("Plot output enabled.", "path", a.cfg.PlotPath)
	}
	if a.cfg.DBPath != "" {
		archive, err := sink.OpenArchive(a.cfg.DBPath)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		closers = append(closers, archive.Close)
		out = append(out, archive, sink.Func(func(context.Context, *synth.Result) error {
			a.logger.Info("Run archived.", "id", archive.LastID(), "db", a.cfg.DBPath)
			return nil
		}))
	}
	if a.cfg.Summary {
		out = append(out, sink.NewSummary(a.stdout))
	}
	return out, closeAll, nil
}
