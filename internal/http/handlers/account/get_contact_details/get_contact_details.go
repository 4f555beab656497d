package getcontactdetails

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"enerbill/internal/core/domain/account"
	e "enerbill/internal/core/domain/errors"
	"enerbill/internal/core/services"
	getcontactdetails "enerbill/internal/core/services/get_contact_details"
	"enerbill/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[getcontactdetails.Input, getcontactdetails.Result]
}

func New(
	service services.Service[getcontactdetails.Input, getcontactdetails.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Username string `json:"username"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Username, validation.Required, validation.Length(1, 64)),
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

	result, err := h.service.Run(r.Context(), getcontactdetails.Input{Username: input.Username})
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		response.RenderError(rw, "account does not exist", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(
		rw,
		response.ContactDetails{Email: string(result.Email), Phone: result.Phone},
		http.StatusOK,
	)
}
