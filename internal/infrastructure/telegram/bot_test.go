package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// messageRecorder answers getMe and records sendMessage form fields
type messageRecorder struct {
	mu    sync.Mutex
	sends []map[string]string
}

func (m *messageRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case strings.HasSuffix(r.URL.Path, "/getMe"):
		_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"grab","username":"grab_bot"}}`))
	case strings.HasSuffix(r.URL.Path, "/sendMessage"):
		fields := map[string]string{}
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			for k, v := range r.MultipartForm.Value {
				fields[k] = v[0]
			}
		}
		m.mu.Lock()
		m.sends = append(m.sends, fields)
		m.mu.Unlock()
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":5,"type":"private"}}}`))
	default:
		_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
	}
}

func (m *messageRecorder) recorded() []map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]map[string]string(nil), m.sends...)
}

func newRecordedBot(t *testing.T) (*tgbot.Bot, *messageRecorder) {
	t.Helper()

	rec := &messageRecorder{}
	srv := httptest.NewServer(rec)
	t.Cleanup(srv.Close)

	bot, err := tgbot.New("123456:TEST", tgbot.WithServerURL(srv.URL))
	require.NoError(t, err)
	return bot, rec
}

func TestNewBot_EmptyToken(t *testing.T) {
	bot, err := NewBot("", zerolog.Nop())
	require.Error(t, err)
	assert.Nil(t, bot)
	assert.Contains(t, err.Error(), "token is required")
}

func TestDefaultHandler_UnknownCommand(t *testing.T) {
	bot, rec := newRecordedBot(t)

	defaultHandler(context.Background(), bot, &models.Update{
		Message: &models.Message{Chat: models.Chat{ID: 5}, Text: "/foo"},
	})

	sends := rec.recorded()
	require.Len(t, sends, 1)
	assert.Equal(t, "5", sends[0]["chat_id"])
	assert.Equal(t, UnknownCommandHint, sends[0]["text"])
}

func TestDefaultHandler_IgnoresNonText(t *testing.T) {
	bot, rec := newRecordedBot(t)

	defaultHandler(context.Background(), bot, &models.Update{})
	defaultHandler(context.Background(), bot, &models.Update{
		Message: &models.Message{Chat: models.Chat{ID: 5}},
	})

	assert.Empty(t, rec.recorded())
}
