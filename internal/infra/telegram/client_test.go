package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

func newOfflineBot(t *testing.T, url string) *telebot.Bot {
	t.Helper()
	bot, err := telebot.NewBot(telebot.Settings{
		URL:     url,
		Token:   "123:abc",
		Offline: true,
	})
	require.NoError(t, err)
	return bot
}

func TestTelebotAdapter_SendMessage(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/bot123:abc/sendMessage"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7,"chat":{"id":42,"type":"private"},"text":"hello"}}`))
	}))
	defer srv.Close()

	adapter := NewTelebotAdapter(newOfflineBot(t, srv.URL))
	require.NoError(t, adapter.SendMessage("42", "hello", nil))

	assert.Equal(t, "42", got["chat_id"])
	assert.Equal(t, "hello", got["text"])
}

func TestTelebotAdapter_SendMessageToChannelUsername(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":8,"chat":{"id":-1001234567890,"type":"channel","username":"my_channel"},"text":"hello"}}`))
	}))
	defer srv.Close()

	adapter := NewTelebotAdapter(newOfflineBot(t, srv.URL))
	require.NoError(t, adapter.SendMessage("@my_channel", "hello", nil))

	assert.Equal(t, "@my_channel", got["chat_id"])
}

func TestNewBot_NoNetworkAtStartup(t *testing.T) {
	bot, err := NewBot("123:abc", time.Second)
	require.NoError(t, err)
	require.NotNil(t, bot)
	assert.NotNil(t, bot.Me)
}

func TestTelebotAdapter_SendMessageAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	adapter := NewTelebotAdapter(newOfflineBot(t, srv.URL))
	err := adapter.SendMessage("42", "hello", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}
