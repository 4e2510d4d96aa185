package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/fernandezvara/passmeter/internal/api"
	"github.com/fernandezvara/passmeter/internal/config"
	"github.com/fernandezvara/passmeter/internal/logger"
	"github.com/fernandezvara/passmeter/internal/metrics"
)

// serveCmd handles the serve command.
func (c *cli) serveCmd(args []string) int {
	fs := c.flagSet("serve")
	configFile := fs.StringP("config", "c", "", "Path to configuration file")
	port := fs.IntP("port", "p", 0, "Listen port (overrides config)")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")

	if code, done := c.parse(fs, args); done {
		return code
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *logLevel != "" {
		cfg.Server.LogLevel = *logLevel
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}

	log, err := logger.New(cfg.Server.LogLevel, cfg.Server.LogFormat)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error("failed to listen", zap.String("addr", addr), zap.Error(err))
		return 1
	}

	if err := runServer(ctx, ln, cfg, log); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		return 1
	}
	return 0
}

// runServer builds the handler stack from cfg and serves on ln until ctx
// is done.
func runServer(ctx context.Context, ln net.Listener, cfg *config.Config, log *zap.Logger) error {
	evaluator, err := loadEvaluator(cfg.Evaluator.CommonPasswordsFile)
	if err != nil {
		return err
	}
	log.Info("evaluator ready",
		zap.Int("common_passwords", evaluator.DictionarySize()),
		zap.Bool("custom_list", cfg.Evaluator.CommonPasswordsFile != ""))

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	h := api.NewHandler(evaluator, log,
		api.WithMetrics(m),
		api.WithMaxBodyBytes(cfg.Server.MaxBodyBytes),
		api.WithVersion(version),
	)
	router := api.NewRouter(h, api.RouterConfig{
		Log:         log,
		Metrics:     m,
		MetricsPath: cfg.Metrics.Path,
	})

	return api.Serve(ctx, ln, router, api.ServerConfig{
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, log)
}
