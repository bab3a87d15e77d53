// SPDX-License-Identifier: MIT

// Command rankmerged serves the merge API over HTTP.
//
//	rankmerged [-config file] [-env file]
//
// Settings come from the config file, then the .env file, then RANKMERGE_*
// environment variables. SIGINT and SIGTERM trigger a graceful shutdown.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alexsandra-Z/system-analysis-2025/config"
	"github.com/Alexsandra-Z/system-analysis-2025/metrics"
	"github.com/Alexsandra-Z/system-analysis-2025/server"
	"github.com/Alexsandra-Z/system-analysis-2025/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "rankmerged:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("rankmerged", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "config file (.yaml, .yml, .json or .toml)")
	envPath := fs.String("env", ".env", "dotenv file, ignored when missing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*cfgPath, *envPath)
	if err != nil {
		return err
	}
	logger, err := cfg.Log.NewLogger(stderr)
	if err != nil {
		return err
	}

	m := metrics.New()
	svc := service.New(
		service.WithMaxObjects(cfg.Merge.MaxObjects),
		service.WithBatchLimit(cfg.Merge.BatchLimit),
		service.WithConcurrency(cfg.Merge.Concurrency),
		service.WithLogger(logger),
		service.WithMetrics(m),
	)
	srv := server.New(svc,
		server.WithLogger(logger),
		server.WithMetrics(m),
		server.WithRateLimit(cfg.Server.RateLimit, cfg.Server.Burst),
		server.WithMaxBodyBytes(cfg.Server.MaxBodyBytes),
	)

	logger.Info("rankmerged starting",
		"addr", cfg.Server.Addr,
		"max_objects", cfg.Merge.MaxObjects,
		"rate_limit", cfg.Server.RateLimit,
	)

	return srv.Run(ctx, cfg.Server.Addr, cfg.Server.ReadTimeout.Duration, cfg.Server.ShutdownTimeout.Duration)
}

func loadConfig(cfgPath, envPath string) (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := config.LoadEnvFile(envPath); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
