// Command tradeconsole runs an interactive client for a trading-automation
// API. It authenticates with a bearer token and accepts either structured
// commands (direct leverage updates) or free-form text that is forwarded to
// the automation engine as a trading prompt.
//
// Usage:
//
//	tradeconsole --config config.yaml
//	tradeconsole --url http://localhost:3030
//	tradeconsole --setup (interactive configuration wizard)
//
// The bearer token is read from the TRADING_API_TOKEN environment variable
// (a .env file is honored) or set interactively with the token command.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/vadiminshakov/tradeconsole/config"
	"github.com/vadiminshakov/tradeconsole/internal/clients"
	"github.com/vadiminshakov/tradeconsole/internal/console"
	"github.com/vadiminshakov/tradeconsole/internal/dispatcher"
	"github.com/vadiminshakov/tradeconsole/internal/session"
	"github.com/vadiminshakov/tradeconsole/internal/setup"
	"github.com/vadiminshakov/tradeconsole/internal/storage/transcript"
	"github.com/vadiminshakov/tradeconsole/pkg/retrier"
)

const (
	probeAttempts = 3
	probeDelay    = time.Second
)

func main() {
	cfg, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Setup {
		if err := setup.RunTUI(); err != nil {
			log.Fatal(err)
		}
		return
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sess := session.New(cfg.BaseURL)
	if cfg.Token != "" {
		sess.SetToken(cfg.Token)
	}

	api := clients.NewAPIClient(cfg.BaseURL, logger)
	disp := dispatcher.New(api, dispatcher.Timeouts{
		Prompt:   cfg.PromptTimeout,
		Leverage: cfg.LeverageTimeout,
	}, logger)

	var transcriptStore *transcript.WALStore
	if cfg.TranscriptDir != "" {
		transcriptStore, err = transcript.NewWALStore(cfg.TranscriptDir)
		if err != nil {
			logger.Warn("transcript recording disabled", zap.Error(err))
			transcriptStore = nil
		} else {
			defer transcriptStore.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	probe := retrier.New(probeAttempts, probeDelay)

	var c *console.Console
	if transcriptStore != nil {
		c = console.New(api, disp, sess, transcriptStore, probe, cfg.HealthTimeout, logger, os.Stdin, os.Stdout)
	} else {
		c = console.New(api, disp, sess, nil, probe, cfg.HealthTimeout, logger, os.Stdin, os.Stdout)
	}

	if err := c.Run(ctx); err != nil {
		logger.Error("console terminated", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
