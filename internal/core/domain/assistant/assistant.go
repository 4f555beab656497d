package assistant

import (
	"context"
	"errors"
)

var ErrAssistantUnavailable = errors.New("assistant is unavailable")

type Question struct {
	Message  string
	Language string
}

// Client proxies questions to a third-party completions API.
type Client interface {
	Ask(ctx context.Context, question Question) (reply string, err error)
}
