package login

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"enerbill/internal/core/domain/account"
	e "enerbill/internal/core/domain/errors"
	ratelimiter "enerbill/internal/core/domain/rate_limiter"
	"enerbill/internal/core/services"
	login "enerbill/internal/core/services/log_in"
	"enerbill/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[login.Input, login.Result]
}

func New(service services.Service[login.Input, login.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Username, validation.Required, validation.Length(1, 64)),
		validation.Field(&i.Password, validation.Required, validation.Length(1, 256)),
	)
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
		login.Input{Username: input.Username, Password: account.RawPassword(input.Password)},
	)
	if errors.Is(err, account.ErrInvalidCredentials) {
		response.RenderUnauthorized(rw)
		return
	}
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, response.NewAccountProfile(result.Account), http.StatusOK)
}
