package telegram

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

type fakeSender struct {
	failures int
	calls    int
	sent     []string
}

func (f *fakeSender) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	f.calls++
	if f.failures > 0 {
		f.failures--
		return nil, errors.New("telegram: flood wait")
	}
	f.sent = append(f.sent, what.(string))
	return &tele.Message{}, nil
}

func TestSplitText(t *testing.T) {
	t.Run("short text stays whole", func(t *testing.T) {
		assert.Equal(t, []string{"view"}, splitText("view", 100))
	})

	t.Run("splits at newlines", func(t *testing.T) {
		text := strings.Repeat("row | cell\n", 20)
		chunks := splitText(text, 50)
		require.Greater(t, len(chunks), 1)
		for _, c := range chunks {
			assert.LessOrEqual(t, escapedLen(c), 50)
			assert.False(t, strings.HasPrefix(c, "\n"))
		}
		assert.Equal(t, strings.Count(text, "row"), strings.Count(strings.Join(chunks, "\n"), "row"))
	})

	t.Run("escaped length counts", func(t *testing.T) {
		text := strings.Repeat("<", 30)
		chunks := splitText(text, 20)
		for _, c := range chunks {
			assert.LessOrEqual(t, escapedLen(c), 20)
		}
		assert.Equal(t, text, strings.Join(chunks, ""))
	})

	t.Run("no newline still splits", func(t *testing.T) {
		chunks := splitText(strings.Repeat("x", 25), 10)
		assert.Equal(t, []string{"xxxxxxxxxx", "xxxxxxxxxx", "xxxxx"}, chunks)
	})
}

func TestSender_SendPre(t *testing.T) {
	chat := &tele.Chat{ID: 42}

	t.Run("retries transient failures", func(t *testing.T) {
		fake := &fakeSender{failures: 2}
		s := &sender{bot: fake, baseDelay: time.Millisecond}

		require.NoError(t, s.sendPre(context.Background(), chat, "File \"simple.csv\" has been loaded."))
		assert.Equal(t, 3, fake.calls)
		assert.Equal(t, []string{"<pre>File &#34;simple.csv&#34; has been loaded.</pre>"}, fake.sent)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		fake := &fakeSender{failures: 100}
		s := &sender{bot: fake, baseDelay: time.Millisecond}

		err := s.sendPre(context.Background(), chat, "view")
		require.Error(t, err)
		assert.Equal(t, maxSendRetries+1, fake.calls)
	})

	t.Run("empty text gets placeholder", func(t *testing.T) {
		fake := &fakeSender{}
		s := &sender{bot: fake, baseDelay: time.Millisecond}

		require.NoError(t, s.sendPre(context.Background(), chat, ""))
		assert.Equal(t, []string{"<pre>(empty)</pre>"}, fake.sent)
	})
}
