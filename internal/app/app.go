// Package app wires the messengers pipeline together:
//
//	load scenario → build matrix → solve → report → optional DOT / metrics
//
// It owns the logger and maps every failure to an ExitError.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/messengers/dijkstra"
	"github.com/katalvlaran/messengers/internal/config"
	"github.com/katalvlaran/messengers/matrix"
	"github.com/katalvlaran/messengers/render"
	"github.com/katalvlaran/messengers/scenario"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	cfg    *config.Config
	in     io.Reader
	outW   io.Writer
	logger *slog.Logger
}

// New builds an App. in feeds standard-input and interactive modes, outW
// receives prompts and reports, and logW receives log records.
// cfg must already be validated.
func New(cfg *config.Config, in io.Reader, outW, logW io.Writer) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{cfg: cfg, in: in, outW: outW, logger: logger}
}

// Run executes one solve. When a metrics path is configured the textfile is
// written whether or not the run succeeds.
func (a *App) Run(ctx context.Context) error {
	var metrics *runMetrics
	if a.cfg.MetricsPath != "" {
		metrics = newRunMetrics()
	}

	err := a.run(ctx, metrics)
	if metrics != nil {
		if werr := metrics.finish(a.cfg.MetricsPath, err); werr != nil {
			a.logger.Error("Writing metrics failed.", "path", a.cfg.MetricsPath, "error", werr)
			if err == nil {
				err = failure("writing metrics", werr)
			}
		}
	}

	return err
}

func (a *App) run(ctx context.Context, metrics *runMetrics) error {
	a.logger.Debug("App.Run method started.")
	opts := a.builderOptions()

	s, err := a.loadScenario(opts)
	if err != nil {
		return failure("reading scenario", err)
	}
	a.logger.Debug("Scenario loaded.", "cities", s.Size, "tokens", len(s.Tokens))
	if err = ctx.Err(); err != nil {
		return failure("cancelled", err)
	}

	var m *matrix.DistanceMatrix
	var res *dijkstra.Result
	var took time.Duration
	if s.Trivial() {
		if a.cfg.Source != dijkstra.Capital {
			return failure("solving", fmt.Errorf("%w: source=%d, cities=1",
				dijkstra.ErrSourceOutOfRange, a.cfg.Source))
		}
		a.logger.Debug("Single city, nothing to solve.")
		res = dijkstra.SingleCity()
	} else {
		if m, err = s.Build(opts...); err != nil {
			return failure("building matrix", err)
		}
		start := time.Now()
		res, err = dijkstra.Dijkstra(m,
			dijkstra.Source(a.cfg.Source),
			dijkstra.WithOnVisit(func(city int, d matrix.Distance) {
				a.logger.Debug("City reached.", "city", city, "name", s.Name(city), "distance", d.String())
			}),
		)
		if err != nil {
			return failure("solving", err)
		}
		took = time.Since(start)
	}
	a.logger.Info("Solved.", "cities", s.Size, "max", res.Max, "reachable", res.Reachable(), "duration", took)
	if !res.Connected() {
		a.logger.Warn("Some cities cannot be reached.", "unreachable", res.Unreachable)
	}
	if metrics != nil {
		metrics.observe(res, roads(m), took)
	}

	if err = a.report(m, res, s); err != nil {
		return failure("writing report", err)
	}
	if a.cfg.DOTPath != "" {
		if err = a.writeDOT(m, res, s); err != nil {
			return failure("writing DOT export", err)
		}
		a.logger.Info("DOT export written.", "path", a.cfg.DOTPath)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) builderOptions() []matrix.BuilderOption {
	if a.cfg.Lenient {
		return []matrix.BuilderOption{matrix.WithLenientParse()}
	}

	return []matrix.BuilderOption{matrix.WithStrictParse()}
}

func (a *App) loadScenario(opts []matrix.BuilderOption) (*scenario.Scenario, error) {
	switch {
	case a.cfg.Interactive:
		a.logger.Debug("Reading scenario interactively.")
		return scenario.Prompt(a.in, a.outW, opts...)
	case a.cfg.ReadsStdin():
		a.logger.Debug("Reading scenario from standard input.")
		return scenario.ReadText(a.in)
	default:
		a.logger.Debug("Reading scenario file.", "path", a.cfg.Input)
		return scenario.Load(a.cfg.Input)
	}
}

func (a *App) report(m *matrix.DistanceMatrix, res *dijkstra.Result, s *scenario.Scenario) error {
	if a.cfg.Format == "json" {
		return render.JSON(a.outW, res, s)
	}

	if a.cfg.ShowMatrix && m != nil {
		if err := render.Matrix(a.outW, m); err != nil {
			return err
		}
	}
	if err := render.Text(a.outW, res); err != nil {
		return err
	}
	if a.cfg.Timeline {
		return render.Timeline(a.outW, res, s)
	}

	return nil
}

func (a *App) writeDOT(m *matrix.DistanceMatrix, res *dijkstra.Result, s *scenario.Scenario) error {
	if m == nil {
		var err error
		if m, err = matrix.NewDistanceMatrix(1); err != nil {
			return err
		}
	}
	dot, err := render.DOT(m, res, s)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(a.cfg.DOTPath); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return os.WriteFile(a.cfg.DOTPath, []byte(dot), 0o644)
}

func roads(m *matrix.DistanceMatrix) int {
	if m == nil {
		return 0
	}

	return m.Roads()
}

// ExitCode returns the exit status for err: 0 for nil, the carried code for
// an ExitError, ExitFailure otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}
