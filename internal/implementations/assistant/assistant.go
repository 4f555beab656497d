package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"enerbill/internal/core/domain/assistant"
	e "enerbill/internal/core/domain/errors"
	"enerbill/internal/core/domain/logging"
)

const DEFAULT_BASE_URL = "https://api.groq.com/openai/v1"

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GroqClient proxies questions to the Groq chat completions API.
type GroqClient struct {
	log        logging.Logger
	httpClient http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewGroqClient(
	log logging.Logger,
	baseURL string,
	apiKey string,
	model string,
	timeout time.Duration,
) *GroqClient {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if baseURL == "" {
		baseURL = DEFAULT_BASE_URL
	}
	return &GroqClient{
		log:        log,
		httpClient: http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

func (c *GroqClient) Ask(ctx context.Context, question assistant.Question) (string, error) {
	requestBody, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{
				Role: "system",
				Content: fmt.Sprintf(
					"You are a helpful assistant for a utility billing service. You must respond in %s.",
					question.Language,
				),
			},
			{Role: "user", Content: question.Message},
		},
	})
	if err != nil {
		return "", err
	}

	request, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/chat/completions",
		bytes.NewReader(requestBody),
	)
	if err != nil {
		return "", err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+c.apiKey)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		c.log.Warning(
			ctx,
			"Assistant API returned non-OK status.",
			logging.Entry("status", response.StatusCode),
		)
		return "", assistant.ErrAssistantUnavailable
	}

	result := chatResponse{}
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return "", err
	}
	if len(result.Choices) == 0 {
		return "", assistant.ErrAssistantUnavailable
	}
	return result.Choices[0].Message.Content, nil
}
