// Package scriptscout provides a high-level façade over the search session
// controller and its collaborators (catalog client, session store, Telegram
// transport and logging) for building a conversational script-catalog
// browser. Most applications interact with this package by:
//  1. Creating a Bot via New() (optionally overriding the default in-memory
//     store, catalog client or logger)
//  2. Calling Run() with a cancellable context
//
// All defaults are safe for local development; production deployments
// typically supply a structured logger and an idle-session TTL.
package scriptscout

import (
	"context"
	"time"

	"github.com/quokkabot/scriptscout/catalog"
	"github.com/quokkabot/scriptscout/controller"
	"github.com/quokkabot/scriptscout/core"
	"github.com/quokkabot/scriptscout/logging"
	"github.com/quokkabot/scriptscout/session"
	"github.com/quokkabot/scriptscout/telegram"
)

// Options configures the Bot instance.
type Options struct {
	// SessionStore keeps per-user search state. Defaults to the in-memory
	// implementation.
	SessionStore core.SessionStore

	// Catalog performs upstream lookups. Defaults to the ScriptBlox client
	// against the public endpoint.
	Catalog core.CatalogClient

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger

	// PageSize is the number of results per search page.
	PageSize int

	// PollTimeout is the Telegram long-poll timeout in seconds.
	PollTimeout int

	// SessionTTL evicts sessions idle longer than this. Zero disables the
	// sweep. Takes effect only when the configured store implements
	// core.SessionSweeper.
	SessionTTL time.Duration

	// SweepInterval is how often the idle-session sweep runs.
	SweepInterval time.Duration
}

// Bot is the high-level façade aggregating the controller, its stores and
// the Telegram transport.
type Bot struct {
	adapter       *telegram.Adapter
	store         core.SessionStore
	logger        logging.Logger
	sessionTTL    time.Duration
	sweepInterval time.Duration
}

// New creates a Bot with optional overrides. Any unset collaborator is
// replaced by its in-memory / no-op default. Token validation happens here,
// before any polling starts.
func New(token string, optFns ...func(o *Options)) (*Bot, error) {
	opts := Options{
		PageSize:      core.DefaultPageSize,
		PollTimeout:   30,
		SweepInterval: 10 * time.Minute,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	if opts.SessionStore == nil {
		opts.SessionStore = session.NewInMemoryStore()
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.New(func(o *catalog.Options) {
			o.Logger = opts.Logger
		})
	}

	ctrl := controller.New(opts.SessionStore, opts.Catalog, func(o *controller.Options) {
		o.PageSize = opts.PageSize
		o.Logger = opts.Logger
	})

	adapter, err := telegram.New(token, ctrl, func(o *telegram.Options) {
		o.PollTimeout = opts.PollTimeout
		o.Logger = opts.Logger
	})
	if err != nil {
		return nil, err
	}

	return &Bot{
		adapter:       adapter,
		store:         opts.SessionStore,
		logger:        opts.Logger,
		sessionTTL:    opts.SessionTTL,
		sweepInterval: opts.SweepInterval,
	}, nil
}

// Run starts the update loop and, when an idle TTL is configured and the
// store supports sweeping, a periodic eviction goroutine. It blocks until
// the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	if sweeper, ok := b.store.(core.SessionSweeper); ok && b.sessionTTL > 0 {
		go b.runSweeper(ctx, sweeper)
	}
	return b.adapter.Run(ctx)
}

func (b *Bot) runSweeper(ctx context.Context, sweeper core.SessionSweeper) {
	ticker := time.NewTicker(b.sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := sweeper.Sweep(time.Now().Add(-b.sessionTTL)); removed > 0 {
				b.logger.Info("idle sessions evicted", "removed", removed)
			}
		}
	}
}
