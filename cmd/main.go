package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rottedfrog/rollout/cmd/bootstrap"
	"github.com/rottedfrog/rollout/config"
	loggerpkg "github.com/rottedfrog/rollout/logger"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

const longHelp = `A rolling logfile appender.

Takes stdin and appends it to logfiles in <dir>. Logs are broken at a
newline as close as possible to the specified size; a line is never split
across two files. Any error deemed unrecoverable makes the process exit
immediately with a non-zero status.

Rotated files are named {prefix}.{n}.log where {n} is a positive integer
starting at 1. The active file is always named "current".`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfg        config.Config
		configPath string
	)

	cmd := &cobra.Command{
		Use:           "rollout [flags] <dir>",
		Short:         "A rolling logfile appender",
		Long:          longHelp,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Dir = args[0]
			}
			if configPath != "" {
				fileCfg, err := config.Load(configPath)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					return err
				}
				mergeFileConfig(cmd, &cfg, fileCfg)
			}

			logg, cleanup, err := bootstrap.InitLogger()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return err
			}
			defer cleanup()

			bootstrap.InitObservability(logg)

			application, err := bootstrap.NewApp(cfg, logg)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				fmt.Fprintln(os.Stderr)
				_ = cmd.Usage()
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := application.Run(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					logg.Info("interrupted, exiting")
					return nil
				}
				logg.Error("appender exited", loggerpkg.E(err))
				fmt.Fprintln(os.Stderr, err)
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&cfg.SizeKB, "size", "s", config.DefaultSizeKB, "max log size in KB")
	flags.IntVarP(&cfg.Keep, "keep", "k", 0, "rotated files to keep, 0 keeps everything (max 999)")
	flags.BoolVarP(&cfg.RotateOnStart, "rotate-on-start", "r", false, "rotate any existing current file at startup")
	flags.StringVarP(&cfg.Prefix, "prefix", "p", "", "rotated log filename prefix (required)")
	flags.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve /metrics and /healthz on this address")
	flags.StringVar(&configPath, "config", "", "path to optional YAML config file")

	return cmd
}

// mergeFileConfig fills cfg from the YAML file for every setting the user
// did not pass explicitly on the command line. Flags win over the file.
func mergeFileConfig(cmd *cobra.Command, cfg *config.Config, fileCfg *config.FileConfig) {
	flags := cmd.Flags()
	if cfg.Dir == "" && fileCfg.Journal.Dir != "" {
		cfg.Dir = fileCfg.Journal.Dir
	}
	if !flags.Changed("prefix") && fileCfg.Journal.Prefix != "" {
		cfg.Prefix = fileCfg.Journal.Prefix
	}
	if !flags.Changed("size") {
		cfg.SizeKB = fileCfg.Journal.SizeKB
	}
	if !flags.Changed("keep") {
		cfg.Keep = fileCfg.Journal.Keep
	}
	if !flags.Changed("rotate-on-start") {
		cfg.RotateOnStart = fileCfg.Journal.RotateOnStart
	}
	if !flags.Changed("metrics-addr") && fileCfg.Server.MetricsAddr != "" {
		cfg.MetricsAddr = fileCfg.Server.MetricsAddr
	}
}
