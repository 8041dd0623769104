package telegram

import (
	"context"
	"html"
	"strings"
	"time"

	"github.com/sandevgo/csvrepl/pkg/conv"
	"github.com/sandevgo/csvrepl/pkg/log"
	"github.com/sethvargo/go-retry"
	tele "gopkg.in/telebot.v3"
)

const (
	maxTelegramMsgLen = 4000 - len("<pre></pre>") // Safety margin below 4096
	maxSendRetries    = 3
)

type messageSender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

type sender struct {
	bot       messageSender
	baseDelay time.Duration
}

func newSender(bot messageSender) *sender {
	return &sender{bot: bot, baseDelay: 300 * time.Millisecond}
}

// sendPre sends text as preformatted HTML, split into chunks that fit the
// Telegram limit once escaped.
func (s *sender) sendPre(ctx context.Context, to tele.Recipient, text string) error {
	logger := log.FromCtx(ctx)

	if strings.TrimSpace(text) == "" {
		text = "(empty)"
	}

	chunks := splitText(text, maxTelegramMsgLen)
	for i, chunk := range chunks {
		msg := conv.Preformatted(chunk)

		backoff := retry.WithMaxRetries(maxSendRetries, retry.NewExponential(s.baseDelay))
		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			if _, err := s.bot.Send(to, msg, tele.ModeHTML); err != nil {
				return retry.RetryableError(err)
			}
			return nil
		})
		if err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("len", len(msg)).Msg("failed to send telegram chunk")
			return err
		}
	}
	return nil
}

// splitText splits text into chunks whose escaped form stays under maxLen.
// It tries to split at newlines to keep table rows intact.
func splitText(text string, maxLen int) []string {
	if escapedLen(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if escapedLen(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := fitPrefix(text, maxLen)
		// Try to find a good break point (newline) in the second half of the chunk
		if idx := strings.LastIndex(text[:cut], "\n"); idx > cut/3 {
			cut = idx
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimLeft(text[cut:], "\n")
	}
	return chunks
}

// fitPrefix returns the longest rune-aligned prefix length whose escaped
// form fits maxLen. It always returns at least one rune.
func fitPrefix(text string, maxLen int) int {
	size := 0
	for i, r := range text {
		n := len(html.EscapeString(string(r)))
		if size+n > maxLen && i > 0 {
			return i
		}
		size += n
	}
	return len(text)
}

func escapedLen(s string) int {
	return len(html.EscapeString(s))
}
