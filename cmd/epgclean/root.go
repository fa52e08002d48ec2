// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arah91-bit/my-epg-automation/internal/config"
	"github.com/arah91-bit/my-epg-automation/internal/jobs"
	xglog "github.com/arah91-bit/my-epg-automation/internal/log"
	"github.com/arah91-bit/my-epg-automation/internal/metrics"
	"github.com/arah91-bit/my-epg-automation/internal/platform/httpx"
	"github.com/arah91-bit/my-epg-automation/internal/probe"
	"github.com/arah91-bit/my-epg-automation/internal/reference"
	"github.com/arah91-bit/my-epg-automation/internal/validate"
	"github.com/arah91-bit/my-epg-automation/internal/version"
)

const skipConfigAnnotation = "skipConfigLoad"

// services builds the collaborators of a command from the loaded configuration.
type services struct {
	newDownloader func(cfg config.AppConfig) reference.Downloader
	newProber     func(cfg config.AppConfig) (probe.Prober, error)
	fs            afero.Fs
}

func defaultServices() services {
	return services{
		newDownloader: func(cfg config.AppConfig) reference.Downloader {
			return httpx.NewDownloader(
				httpx.NewClient(cfg.Download.Timeout),
				httpx.WithRetries(cfg.Download.Retries),
				httpx.WithUserAgent(version.UserAgent()),
				httpx.WithLogger(xglog.WithComponent("httpx")),
			)
		},
		newProber: func(cfg config.AppConfig) (probe.Prober, error) {
			p := probe.NewFFprobe(cfg.Probe.Bin)
			if err := p.Check(); err != nil {
				return nil, err
			}
			return p, nil
		},
		fs: afero.NewOsFs(),
	}
}

type commandContext struct {
	svc services

	configFlag   string
	logLevelFlag string

	configOnce sync.Once
	config     config.AppConfig
	configErr  error
}

// ensureConfig loads the configuration once and reconfigures logging from it.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (config.AppConfig, error) {
	c.configOnce.Do(func() {
		path := strings.TrimSpace(c.configFlag)
		cfg, err := config.NewLoader(path, version.Version).Load()
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != "" {
			lvl, err := validate.ParseLogLevel(c.logLevelFlag)
			if err != nil {
				c.configErr = fmt.Errorf("--log-level: %w", err)
				return
			}
			cfg.Log.Level = string(lvl)
		}

		xglog.Configure(xglog.Config{
			Level:   cfg.Log.Level,
			Format:  cfg.Log.Format,
			File:    cfg.Log.File,
			Output:  cmd.ErrOrStderr(),
			Version: cfg.Version,
		})
		if path != "" {
			logger := xglog.WithComponent("cli")
			logger.Debug().
				Str(xglog.FieldEvent, "config.loaded").
				Str(xglog.FieldConfigPath, path).
				Msg("loaded configuration from file")
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// deps assembles the pipeline collaborators for cfg.
func (c *commandContext) deps(cfg config.AppConfig, withProber bool) (jobs.Deps, error) {
	deps := jobs.Deps{
		Metrics: metrics.NewRecorder(),
		Fs:      c.svc.fs,
	}
	if withProber {
		p, err := c.svc.newProber(cfg)
		if err != nil {
			return deps, fmt.Errorf("stream probe unavailable (%s): %w", cfg.Probe.Bin, err)
		}
		deps.Prober = p
		deps.Downloader = c.svc.newDownloader(cfg)
	}
	return deps, nil
}

func newRootCommand(svc services) *cobra.Command {
	ctx := &commandContext{svc: svc}

	rootCmd := &cobra.Command{
		Use:           "epgclean",
		Short:         "Clean IPTV playlists and rank EPG sources",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().StringVar(&ctx.logLevelFlag, "log-level", "", "Log level override (trace, debug, info, warn, error)")

	rootCmd.AddCommand(newCleanCommand(ctx))
	rootCmd.AddCommand(newRelevancyCommand(ctx))
	rootCmd.AddCommand(newValidateCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations[skipConfigAnnotation] == "true" {
			return true
		}
	}
	return false
}
