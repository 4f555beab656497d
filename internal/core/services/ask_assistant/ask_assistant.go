package askassistant

import (
	"context"
	"errors"

	"enerbill/internal/core/domain/assistant"
	e "enerbill/internal/core/domain/errors"
	"enerbill/internal/core/domain/logging"
	"enerbill/internal/core/services"
)

type Input struct {
	Message  string
	Language string
}

func (i Input) GetRateLimitKey() string {
	return "ask-assistant::" + i.Language
}

type Result struct {
	Reply string
}

type service struct {
	log    logging.Logger
	client assistant.Client
}

func New(log logging.Logger, client assistant.Client) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if client == nil {
		panic(e.NewNilArgumentError("client"))
	}
	return &service{log: log, client: client}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	reply, err := s.client.Ask(ctx, assistant.Question{
		Message:  input.Message,
		Language: input.Language,
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Assistant request failed.", logging.Entry("err", err))
		return result, assistant.ErrAssistantUnavailable
	}
	return Result{Reply: reply}, nil
}
