package askassistant

import (
	"context"
	"testing"

	"enerbill/internal/core/domain/assistant"
	"enerbill/internal/core/domain/logging"

	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	client := assistant.NewFakeClient("Your bill is due on the 5th.")
	service := New(logging.NewFakeLogger(), client)

	result, err := service.Run(context.Background(), Input{
		Message:  "When is my bill due?",
		Language: "english",
	})

	require.Nil(t, err)
	require.Equal(t, "Your bill is due on the 5th.", result.Reply)
	require.Len(t, client.Asked, 1)
	require.Equal(t, "english", client.Asked[0].Language)
}

func TestUpstreamFailure(t *testing.T) {
	client := assistant.NewFakeClient("")
	client.ReturnError = true
	service := New(logging.NewFakeLogger(), client)

	_, err := service.Run(context.Background(), Input{Message: "hola", Language: "spanish"})

	require.ErrorIs(t, err, assistant.ErrAssistantUnavailable)
}
