// SPDX-License-Identifier: MIT

// Package commands holds the lvpath command tree.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LugolBis/Data-Toolkit/core"
	"github.com/LugolBis/Data-Toolkit/graphio"
)

// ErrMissingGraph is returned when neither --graph, LVPATH_GRAPH nor the
// config file names a graph document.
var ErrMissingGraph = errors.New("lvpath: no graph document given (use --graph)")

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	logger  *zap.Logger
	cfgFile string
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "lvpath",
		Short: "Shortest paths over YAML graph documents",
		Long: `lvpath loads a graph document and queries it.

Settings can come from flags, from LVPATH_* environment variables
(LVPATH_GRAPH, LVPATH_STRATEGY, LVPATH_LOG_LEVEL) or from a YAML
config file passed with --config.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml)")
	pf.String("graph", "", "path to a YAML graph document")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	_ = a.v.BindPFlag("graph", pf.Lookup("graph"))
	_ = a.v.BindPFlag("log-level", pf.Lookup("log-level"))

	a.v.SetEnvPrefix("LVPATH")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(newRouteCmd(a), newHopsCmd(a), newMatrixCmd(a), newDegreeCmd(a))

	return root
}

// Execute runs the command tree against os.Args and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		a.v.SetConfigType("yaml")
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("lvpath: read config: %w", err)
		}
	}

	logger, err := newLogger(cmd.ErrOrStderr(), a.v.GetString("log-level"))
	if err != nil {
		return err
	}
	a.logger = logger.With(zap.String("cmd", cmd.Name()))
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("config loaded", zap.String("path", used))
	}

	return nil
}

// newLogger builds a JSON logger writing to w at the given level.
func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("lvpath: log level: %w", err)
	}
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.EpochTimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	})

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl)), nil
}

// loadGraph reads the document named by the "graph" setting.
func (a *app) loadGraph() (*core.Graph[string, core.Cost], error) {
	path := a.v.GetString("graph")
	if path == "" {
		return nil, ErrMissingGraph
	}
	g, err := graphio.Load(path)
	if err != nil {
		a.logger.Error("load graph", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	a.logger.Debug("graph loaded",
		zap.String("path", path),
		zap.Stringer("kind", g.Kind()),
		zap.Int("nodes", g.Order()),
		zap.Int("edges", g.Size()),
	)

	return g, nil
}
