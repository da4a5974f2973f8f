// Command messengers computes how long it takes messengers leaving the
// capital to reach every city of an empire.
//
// Usage:
//
//	messengers [flags] [FILE]
//
// FILE is a plain-text scenario (city count, then the lower triangle of the
// travel-time matrix, x for no road) or an .hcl scenario. Without FILE the
// plain-text format is read from standard input; --interactive prompts for
// every cell instead.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/messengers/internal/app"
	"github.com/katalvlaran/messengers/internal/config"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr, os.LookupEnv)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(app.ExitCode(err))
	}
}

// flagValues mirrors the command-line flags before they are layered over
// the file and environment configuration.
type flagValues struct {
	configPath  string
	format      string
	source      int
	lenient     bool
	interactive bool
	matrix      bool
	timeline    bool
	dotPath     string
	metricsPath string
	logLevel    string
	logFormat   string
}

func newRootCmd(in io.Reader, out, errOut io.Writer, lookupEnv func(string) (string, bool)) *cobra.Command {
	var fv flagValues
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "messengers [flags] [FILE]",
		Short: "Time for messengers from the capital to reach every city",
		Long: `messengers reads a symmetric travel-time matrix between cities, runs
Dijkstra's algorithm from the capital (city 0) and reports the shortest time to
each city and the time by which every reachable city has been informed.

FILE holds the city count followed by the lower triangle of the matrix, row by
row, with x marking a missing road. Files ending in .hcl are read as HCL:

  cities = ["Capital", "Aston", "Brill"]
  lower  = [[50], [30, "x"]]

Every flag can also be set in a YAML file (--config) or through a
MESSENGERS_* environment variable; flags win over both.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return app.Usage(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, fv, args, lookupEnv)
			if err != nil {
				return app.Usage(err)
			}

			return app.New(cfg, in, out, errOut).Run(cmd.Context())
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return app.Usage(err)
	})

	f := cmd.Flags()
	f.StringVarP(&fv.configPath, "config", "c", "", "YAML configuration file")
	f.StringVar(&fv.format, "format", def.Format, "report format: text or json")
	f.IntVar(&fv.source, "source", def.Source, "city the messengers leave from")
	f.BoolVar(&fv.lenient, "lenient", def.Lenient, "read malformed numbers like atoi instead of failing")
	f.BoolVarP(&fv.interactive, "interactive", "i", def.Interactive, "prompt for every matrix cell")
	f.BoolVar(&fv.matrix, "matrix", def.ShowMatrix, "print the input matrix before the report")
	f.BoolVar(&fv.timeline, "timeline", def.Timeline, "print when each city is reached")
	f.StringVar(&fv.dotPath, "dot", def.DOTPath, "write a Graphviz DOT export to this file")
	f.StringVar(&fv.metricsPath, "metrics-textfile", def.MetricsPath, "write Prometheus metrics to this file")
	f.StringVar(&fv.logLevel, "log-level", def.LogLevel, "log level: debug, info, warn or error")
	f.StringVar(&fv.logFormat, "log-format", def.LogFormat, "log format: text or json")

	return cmd
}

// resolveConfig layers defaults, the config file, the environment, changed
// flags and the positional FILE, then validates the result.
func resolveConfig(cmd *cobra.Command, fv flagValues, args []string, lookupEnv func(string) (string, bool)) (*config.Config, error) {
	cfg := config.Default()
	if fv.configPath != "" {
		var err error
		if cfg, err = config.Load(fv.configPath); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(lookupEnv); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("format", func() { cfg.Format = fv.format })
	set("source", func() { cfg.Source = fv.source })
	set("lenient", func() { cfg.Lenient = fv.lenient })
	set("interactive", func() { cfg.Interactive = fv.interactive })
	set("matrix", func() { cfg.ShowMatrix = fv.matrix })
	set("timeline", func() { cfg.Timeline = fv.timeline })
	set("dot", func() { cfg.DOTPath = fv.dotPath })
	set("metrics-textfile", func() { cfg.MetricsPath = fv.metricsPath })
	set("log-level", func() { cfg.LogLevel = fv.logLevel })
	set("log-format", func() { cfg.LogFormat = fv.logFormat })
	if len(args) == 1 {
		cfg.Input = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
