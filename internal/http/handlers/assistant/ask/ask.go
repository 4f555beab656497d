package ask

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"enerbill/internal/core/domain/assistant"
	e "enerbill/internal/core/domain/errors"
	ratelimiter "enerbill/internal/core/domain/rate_limiter"
	"enerbill/internal/core/services"
	askassistant "enerbill/internal/core/services/ask_assistant"
	"enerbill/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[askassistant.Input, askassistant.Result]
}

func New(service services.Service[askassistant.Input, askassistant.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Message, validation.Required, validation.Length(1, 4096)),
		validation.Field(&i.Language, validation.Required, validation.Length(1, 64)),
	)
}

type Result struct {
	Reply string `json:"reply"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		askassistant.Input{Message: input.Message, Language: input.Language},
	)
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw)
		return
	}
	if errors.Is(err, assistant.ErrAssistantUnavailable) {
		response.RenderError(rw, "assistant is unavailable", http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Reply: result.Reply}, http.StatusOK)
}
