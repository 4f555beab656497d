package updatecontactdetails

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"enerbill/internal/core/domain/account"
	c "enerbill/internal/core/domain/common"
	e "enerbill/internal/core/domain/errors"
	"enerbill/internal/core/services"
	updatecontactdetails "enerbill/internal/core/services/update_contact_details"
	"enerbill/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[updatecontactdetails.Input, updatecontactdetails.Result]
}

func New(
	service services.Service[updatecontactdetails.Input, updatecontactdetails.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Username, validation.Required, validation.Length(1, 64)),
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Phone, validation.Required, validation.Match(account.PhonePattern)),
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
		updatecontactdetails.Input{
			Username: input.Username,
			Email:    c.NewEmail(input.Email),
			Phone:    input.Phone,
		},
	)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		response.RenderError(rw, "account does not exist", http.StatusNotFound)
		return
	}
	var conflictErr *account.ConflictError
	if errors.As(err, &conflictErr) {
		conflicts := make([]string, 0, len(conflictErr.Conflicts))
		for _, conflict := range conflictErr.Conflicts {
			conflicts = append(conflicts, string(conflict))
		}
		response.RenderConflicts(rw, conflicts)
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
