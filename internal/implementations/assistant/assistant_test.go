package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domain "enerbill/internal/core/domain/assistant"
	"enerbill/internal/core/domain/logging"

	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	var received chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.Nil(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(chatResponse{
			Choices: []struct {
				Message chatMessage `json:"message"`
			}{
				{Message: chatMessage{Role: "assistant", Content: "Su factura vence el 5."}},
			},
		})
	}))
	defer server.Close()

	client := NewGroqClient(
		logging.NewFakeLogger(),
		server.URL,
		"test-key",
		"test-model",
		time.Second,
	)
	reply, err := client.Ask(context.Background(), domain.Question{
		Message:  "Cuando vence mi factura?",
		Language: "spanish",
	})

	require.Nil(t, err)
	require.Equal(t, "Su factura vence el 5.", reply)
	require.Equal(t, "test-model", received.Model)
	require.Len(t, received.Messages, 2)
	require.Equal(t, "system", received.Messages[0].Role)
	require.Contains(t, received.Messages[0].Content, "spanish")
	require.Equal(t, "Cuando vence mi factura?", received.Messages[1].Content)
}

func TestAskUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewGroqClient(logging.NewFakeLogger(), server.URL, "test-key", "test-model", time.Second)
	_, err := client.Ask(context.Background(), domain.Question{Message: "hola", Language: "spanish"})

	require.ErrorIs(t, err, domain.ErrAssistantUnavailable)
}
