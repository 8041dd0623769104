package telegram

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sandevgo/csvrepl/internal/config"
	"github.com/sandevgo/csvrepl/internal/core"
	"github.com/sandevgo/csvrepl/internal/service/session"
	"github.com/sandevgo/csvrepl/pkg/conv"
	"github.com/sandevgo/csvrepl/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

const greeting = `**%s** is ready.

Send a command as a plain message, for example:

` + "`load_file simple.csv`" + `, then ` + "`view`" + ` or ` + "`search 0 one`" + `.

Send ` + "`help`" + ` for the full list and ` + "`/mode`" + ` to switch between *brief* and *verbose* output.`

type Bot struct {
	bot      *tele.Bot
	sender   *sender
	sessions *session.Manager
	ownerID  int64

	mu          sync.Mutex
	modes       map[int64]session.Mode
	defaultMode session.Mode
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	app core.AppConfig,
	sessions *session.Manager,
) (*Bot, error) {
	mode, err := session.ParseMode(app.GetOutputMode())
	if err != nil {
		return nil, err
	}

	pref := tele.Settings{
		Token:  cfg.GetTelegramToken(),
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:         b,
		sender:      newSender(b),
		sessions:    sessions,
		ownerID:     cfg.GetTelegramOwnerID(),
		modes:       make(map[int64]session.Mode),
		defaultMode: mode,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: Only allow the owner
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil || c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle("/start", bot.handleStart)
	b.Handle("/mode", bot.handleMode)
	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleStart(c tele.Context) error {
	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(fmt.Sprintf(greeting, core.AppName))))
	return c.Send(html, tele.ModeHTML)
}

func (b *Bot) handleMode(c tele.Context) error {
	chatID := c.Chat().ID
	mode := b.mode(chatID).Toggle()
	if payload := strings.TrimSpace(c.Message().Payload); payload != "" {
		parsed, err := session.ParseMode(payload)
		if err != nil {
			return c.Send(err.Error())
		}
		mode = parsed
	}

	b.mu.Lock()
	b.modes[chatID] = mode
	b.mu.Unlock()

	return c.Send(fmt.Sprintf("Output mode: %s", mode))
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)
	chatID := c.Chat().ID

	repl := b.sessions.Get(fmt.Sprintf("telegram-%d", chatID))
	entry := repl.Submit(ctx, c.Text())

	if err := b.sender.sendPre(ctx, c.Chat(), entry.Plain(b.mode(chatID))); err != nil {
		logger.Error().Err(err).Int64("chat", chatID).Msg("failed to send result")
		return err
	}
	return nil
}

func (b *Bot) mode(chatID int64) session.Mode {
	b.mu.Lock()
	defer b.mu.Unlock()
	if m, ok := b.modes[chatID]; ok {
		return m
	}
	return b.defaultMode
}
