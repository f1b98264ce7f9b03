package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-labellog/logger"
	"github.com/mordilloSan/go-labellog/logger/metrics"
	"github.com/mordilloSan/go-labellog/logger/provider"
)

var version = "dev"

type options struct {
	level  string
	config string
	color  string
	label  string
	watch  bool
	counts bool
}

var colorModes = map[string]logger.ColorMode{
	"auto":   logger.ColorAuto,
	"always": logger.ColorAlways,
	"never":  logger.ColorNever,
}

// newRootCmd builds the demo command. It prints one line per level so the
// effect of each setting can be seen.
func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:     "labellog",
		Short:   "Print sample labelled log lines",
		Version: version,
		Long: `labellog prints one sample line per level through a labelled logger.

The level is read from LOGGER_LEVEL, then from the config file, then from
--level; later sources win. With --watch the config file is reloaded on
change and the samples are printed again until interrupted.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.level, "level", "l", "", "most verbose level to print (none, error, warn, info, debug)")
	f.StringVarP(&opts.config, "config", "c", "", "TOML or YAML config file")
	f.StringVar(&opts.color, "color", "auto", "colorize level tags (auto, always, never)")
	f.StringVar(&opts.label, "label", "demo", "logger label")
	f.BoolVarP(&opts.watch, "watch", "w", false, "reload the config file on change")
	f.BoolVar(&opts.counts, "counts", false, "print per-level line counts at the end")
	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, opts options) error {
	mode, ok := colorModes[opts.color]
	if !ok {
		return fmt.Errorf("invalid --color %q", opts.color)
	}

	providers := []logger.Provider{provider.Env("")}

	var file *provider.File
	if opts.config != "" {
		var err error
		file, err = provider.NewFile(opts.config)
		if file == nil {
			return err
		}
		// Validation problems leave a usable configuration.
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), logger.ErrorChain(err))
		}
		providers = append(providers, file.Provider())
	}

	if opts.level != "" {
		l, err := logger.ParseLevel(opts.level)
		if err != nil {
			return fmt.Errorf("invalid --level: %w", err)
		}
		providers = append(providers, provider.Static(logger.Config{LogLevel: l}))
	}

	counter, err := metrics.New(prometheus.NewRegistry())
	if err != nil {
		return err
	}
	base := provider.Chain(providers...)
	cfg := func() logger.Config {
		c := base()
		c.Hook = logger.ChainHooks(counter.Hook(), c.Hook)
		return c
	}

	factory := logger.Build(cfg,
		logger.WithConsole(logger.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr())),
		logger.WithColor(mode),
	)
	log := factory.New(opts.label)

	samples(log)

	if opts.watch && file != nil {
		w, err := file.NewWatcher()
		if err != nil {
			return err
		}
		defer w.Close()
		w.Log = log.Sub(":config")
		w.OnReload = func(err error) {
			if err == nil {
				samples(log)
			}
		}
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}

	if opts.counts {
		for _, l := range logger.Levels() {
			log.Raw(fmt.Sprintf("%-8s %v", l, counter.Count(l, opts.label)))
		}
	}
	return nil
}

func samples(log *logger.Logger) {
	log.Debug("debug line")
	log.Info("info line")
	log.Success("success line")
	log.Warn("warn line")
	log.Error("error line")
	log.Fail("fail line", logger.ErrorChain(fmt.Errorf("request: %w", errors.New("connection refused"))))
	log.Sub(":worker").Info("sub-logger line")
	log.Raw("raw line, never filtered")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
