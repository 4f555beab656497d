package sendresettoken

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"enerbill/internal/core/domain/account"
	e "enerbill/internal/core/domain/errors"
	ratelimiter "enerbill/internal/core/domain/rate_limiter"
	"enerbill/internal/core/services"
	sendresettoken "enerbill/internal/core/services/send_reset_token"
	"enerbill/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service    services.Service[sendresettoken.Input, sendresettoken.Result]
	isTestMode bool
}

func New(
	service services.Service[sendresettoken.Input, sendresettoken.Result],
	isTestMode bool,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, isTestMode: isTestMode}
}

type Input struct {
	DNI string `json:"dni"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.DNI, validation.Required, validation.Match(account.DNIPattern)),
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

	result, err := h.service.Run(r.Context(), sendresettoken.Input{DNI: account.DNI(input.DNI)})
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		response.RenderError(rw, "account does not exist", http.StatusNotFound)
		return
	}
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw)
		return
	}
	if errors.Is(err, account.ErrResetTokenDeliveryFailed) {
		response.RenderError(rw, "could not deliver reset token", http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	if h.isTestMode {
		rw.Header().Set("x-test-reset-token", string(result.Token))
	}
	response.Render(rw, struct{}{}, http.StatusOK)
}
