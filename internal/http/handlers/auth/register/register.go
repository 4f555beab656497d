package register

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"enerbill/internal/core/domain/account"
	c "enerbill/internal/core/domain/common"
	e "enerbill/internal/core/domain/errors"
	"enerbill/internal/core/services"
	registeraccount "enerbill/internal/core/services/register_account"
	"enerbill/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[registeraccount.Input, registeraccount.Result]
}

func New(
	service services.Service[registeraccount.Input, registeraccount.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	FirstName       string `json:"firstName"`
	PaternalSurname string `json:"paternalSurname"`
	MaternalSurname string `json:"maternalSurname"`
	DNI             string `json:"dni"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Username        string `json:"username"`
	Password        string `json:"password"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.FirstName, validation.Required, validation.Length(1, 128)),
		validation.Field(&i.PaternalSurname, validation.Required, validation.Length(1, 128)),
		validation.Field(&i.MaternalSurname, validation.Required, validation.Length(1, 128)),
		validation.Field(&i.DNI, validation.Required, validation.Match(account.DNIPattern)),
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Phone, validation.Required, validation.Match(account.PhonePattern)),
		validation.Field(&i.Username, validation.Required, validation.Length(3, 64)),
		validation.Field(&i.Password, validation.Required, validation.Length(6, 256)),
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
		registeraccount.Input{
			FirstName:       input.FirstName,
			PaternalSurname: input.PaternalSurname,
			MaternalSurname: input.MaternalSurname,
			DNI:             account.DNI(input.DNI),
			Email:           c.NewEmail(input.Email),
			Phone:           input.Phone,
			Username:        input.Username,
			Password:        account.RawPassword(input.Password),
		},
	)
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

	response.Render(rw, response.NewAccountProfile(result.Account), http.StatusCreated)
}
