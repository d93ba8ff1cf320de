package main

import (
	"fmt"
	"os"

	"github.com/gogpu/gg"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/gogpu/geonym"
	"github.com/gogpu/geonym/internal/config"
	"github.com/gogpu/geonym/internal/logging"
	"github.com/gogpu/geonym/internal/metrics"
	"github.com/gogpu/geonym/internal/playground"
	"github.com/gogpu/geonym/spaces"
)

var rootCmd = &cobra.Command{
	Use:   "geonym",
	Short: "geonym is a computational geometry playground",
	Long: `geonym generates nested structures and draws them with simple recursive
geometric rules. Each space has its own generator and renderer.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("config", "geonym.yaml", "Configuration file (YAML)")
	f.String("log-level", "", "Log level: debug, info, warn, error")
	f.String("log-format", "", "Log format: text or json")
	f.Uint64("seed", 0, "Random seed (0 picks one)")
	f.Int("depth", 0, "Generation depth")
	f.Int("size", 0, "Canvas size in pixels")
	f.Bool("caption", false, "Write the space title onto the image")
	f.StringToString("param", nil, "Extra generation parameters (key=value)")
}

// env is the state shared by every command.
type env struct {
	cfg     config.Config
	reg     *geonym.Registry
	prom    *prometheus.Registry
	metrics *metrics.Collector
	pg      *playground.Playground
	params  geonym.Params
}

// setup loads the configuration, applies flag overrides, installs the logger
// and registers the spaces.
func setup(cmd *cobra.Command) (*env, error) {
	f := cmd.Flags()
	path, _ := f.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if f.Changed("log-level") {
		cfg.Log.Level, _ = f.GetString("log-level")
	}
	if f.Changed("log-format") {
		cfg.Log.Format, _ = f.GetString("log-format")
	}
	if f.Changed("seed") {
		cfg.Generate.Seed, _ = f.GetUint64("seed")
	}
	if f.Changed("depth") {
		cfg.Generate.Depth, _ = f.GetInt("depth")
	}
	if f.Changed("size") {
		cfg.Canvas.Size, _ = f.GetInt("size")
	}
	if f.Changed("caption") {
		cfg.Canvas.Caption, _ = f.GetBool("caption")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	geonym.SetLogger(logger)
	gg.SetLogger(logger)

	e := &env{cfg: cfg, reg: geonym.NewRegistry(), prom: prometheus.NewRegistry(), params: geonym.Params{}}
	if err := spaces.RegisterAll(e.reg); err != nil {
		return nil, err
	}
	extra, _ := f.GetStringToString("param")
	for k, v := range extra {
		e.params[k] = v
	}
	e.metrics = metrics.New(e.prom)
	e.pg = playground.New(e.reg,
		playground.WithConfig(cfg),
		playground.WithMetrics(e.metrics),
		playground.WithLogger(logger),
	)
	return e, nil
}

// show composes a scene for the space named by args, or the first space.
func (e *env) show(args []string) (*geonym.Scene, error) {
	if len(args) == 0 {
		all := e.reg.Spaces()
		if len(all) == 0 {
			return nil, geonym.ErrUnknownSpace
		}
		args = []string{all[0].Descriptor().ID}
	}
	return e.pg.Show(args[0], 0, e.params)
}
