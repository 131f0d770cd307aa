package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/quokkabot/scriptscout/controller"
	"github.com/quokkabot/scriptscout/core"
	"github.com/quokkabot/scriptscout/logging"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// PollTimeout is the long-poll timeout in seconds for getUpdates.
	PollTimeout int
	// Logger records dispatch activity and delivery failures. Defaults to
	// NoOp.
	Logger logging.Logger
}

// Adapter drives the Telegram long-poll loop and translates updates into
// controller calls. Each update is handled in its own goroutine; the
// controller serializes per-user work itself, so handling order across
// distinct users is unconstrained.
type Adapter struct {
	bot         *tgbotapi.BotAPI
	ctrl        *controller.Controller
	pollTimeout int
	logger      logging.Logger
}

// New authenticates against the Bot API and constructs an Adapter. An
// invalid or rejected token surfaces here, before any polling starts.
func New(token string, ctrl *controller.Controller, optFns ...func(o *Options)) (*Adapter, error) {
	opts := Options{
		PollTimeout: 30,
		Logger:      logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Adapter{bot: bot, ctrl: ctrl, pollTimeout: opts.PollTimeout, logger: opts.Logger}, nil
}

// Run polls for updates until the context is cancelled. Per-update errors
// are logged and never terminate the loop.
func (a *Adapter) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = a.pollTimeout
	updates := a.bot.GetUpdatesChan(cfg)

	a.logger.Info("update loop started", "bot", a.bot.Self.UserName)
	for {
		select {
		case <-ctx.Done():
			a.bot.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go a.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate dispatches one incoming update. The event id correlates all
// log lines produced while handling it.
func (a *Adapter) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	eventID := uuid.NewString()
	switch {
	case update.Message != nil && update.Message.IsCommand():
		a.handleCommand(ctx, eventID, update.Message)
	case update.CallbackQuery != nil:
		a.handleCallback(ctx, eventID, update.CallbackQuery)
	}
}

func (a *Adapter) handleCommand(ctx context.Context, eventID string, msg *tgbotapi.Message) {
	userID := msg.From.ID
	a.logger.Debug("command received", "event_id", eventID, "user_id", userID, "command", msg.Command())

	switch msg.Command() {
	case "start":
		a.send(eventID, msg.Chat.ID, a.ctrl.Greeting())
	case "search":
		query := strings.TrimSpace(msg.CommandArguments())
		if reply, ok := a.ctrl.StartSearch(ctx, userID, query); ok {
			a.send(eventID, msg.Chat.ID, reply)
		}
	}
}

func (a *Adapter) handleCallback(ctx context.Context, eventID string, cq *tgbotapi.CallbackQuery) {
	// Acknowledge first so the client stops showing a spinner even when the
	// token turns out to be stale or unrecognized.
	if _, err := a.bot.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		a.logger.Warn("callback ack failed", "event_id", eventID, "error", err)
	}

	userID := cq.From.ID
	a.logger.Debug("callback received", "event_id", eventID, "user_id", userID, "token", cq.Data)

	reply, ok := a.ctrl.HandleToken(ctx, userID, cq.Data)
	if !ok {
		return
	}

	chatID := userID
	if cq.Message != nil {
		chatID = cq.Message.Chat.ID
	}
	a.send(eventID, chatID, reply)
}

// send delivers a reply to a chat, attaching the inline keyboard when the
// reply carries one. Delivery failures are logged, not propagated.
func (a *Adapter) send(eventID string, chatID int64, reply core.Reply) {
	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if reply.HasKeyboard() {
		msg.ReplyMarkup = markupFor(reply)
	}
	if _, err := a.bot.Send(msg); err != nil {
		a.logger.Error("send failed", "event_id", eventID, "chat_id", chatID, "error", err)
	}
}

// markupFor converts a reply's button rows into Telegram inline keyboard
// markup.
func markupFor(reply core.Reply) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(reply.Keyboard))
	for _, row := range reply.Keyboard {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Token))
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
