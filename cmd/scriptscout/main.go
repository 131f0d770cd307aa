// Command scriptscout runs the Telegram script-catalog browser bot. It
// reads its configuration from the environment (BOT_TOKEN is required),
// wires the catalog client and in-memory session store, and polls for
// updates until interrupted.
package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/quokkabot/scriptscout"
	"github.com/quokkabot/scriptscout/catalog"
	"github.com/quokkabot/scriptscout/config"
	"github.com/quokkabot/scriptscout/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger := logging.NewSlogLogger(cfg.Level(), cfg.LogFormat, false)

	bot, err := scriptscout.New(cfg.BotToken, func(o *scriptscout.Options) {
		o.Logger = logger
		o.PageSize = cfg.PageSize
		o.PollTimeout = cfg.PollTimeout
		o.SessionTTL = cfg.SessionTTL
		o.SweepInterval = cfg.SweepInterval
		o.Catalog = catalog.New(func(co *catalog.Options) {
			co.BaseURL = cfg.BaseURL
			co.Logger = logger
		})
	})
	if err != nil {
		log.Fatalf("bot setup failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("bot stopped: %v", err)
	}
}
