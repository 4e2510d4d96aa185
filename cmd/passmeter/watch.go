package main

import (
	"bufio"
	"fmt"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/fernandezvara/passmeter/internal/client"
	"github.com/fernandezvara/passmeter/internal/config"
	"github.com/fernandezvara/passmeter/internal/logger"
	"github.com/fernandezvara/passmeter/internal/meter"
)

// watchCmd handles the watch command. Every line on stdin is treated as
// the current contents of the password field.
func (c *cli) watchCmd(args []string) int {
	fs := c.flagSet("watch")
	configFile := fs.StringP("config", "c", "", "Path to configuration file")
	remote := fs.String("remote", "", "Score through a passmeter server at this URL")
	debounce := fs.Duration("debounce", 0, "Quiet period before scoring (overrides config)")
	noColor := fs.Bool("no-color", false, "Disable coloured output")

	if code, done := c.parse(fs, args); done {
		return code
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}
	if fs.Changed("remote") {
		cfg.Meter.RemoteURL = *remote
	}
	if fs.Changed("debounce") {
		cfg.Meter.Debounce = *debounce
	}

	log, err := logger.New(cfg.Server.LogLevel, "console")
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	evaluator, err := loadEvaluator(cfg.Evaluator.CommonPasswordsFile)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}

	var scorer meter.Scorer = meter.Local{Evaluator: evaluator}
	if cfg.Meter.RemoteURL != "" {
		rc, err := client.New(cfg.Meter.RemoteURL, nil)
		if err != nil {
			fmt.Fprintf(c.stderr, "Error: %v\n", err)
			return 1
		}
		scorer = rc
		log.Debug("scoring remotely", zap.String("url", cfg.Meter.RemoteURL))
	}

	m := meter.New(scorer, meter.NewTerminal(c.stdout, useColor(*noColor)),
		meter.WithDebounce(cfg.Meter.Debounce),
		meter.WithFallback(evaluator),
		meter.WithLogger(log),
	)
	defer m.Close()

	scanner := bufio.NewScanner(c.stdin)
	for scanner.Scan() {
		m.Update(scanner.Text())
	}
	m.Flush()

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(c.stderr, "Error: reading input: %v\n", err)
		return 1
	}
	return 0
}

// useColor reports whether output should be coloured. color.NoColor is
// already set when stdout is not a terminal or NO_COLOR is present.
func useColor(disabled bool) bool {
	return !disabled && !color.NoColor
}
