package response

import "enerbill/internal/core/domain/account"

type AccountProfile struct {
	ID              int64  `json:"id"`
	FirstName       string `json:"firstName"`
	PaternalSurname string `json:"paternalSurname"`
	MaternalSurname string `json:"maternalSurname"`
	DNI             string `json:"dni"`
	Email           string `json:"email"`
}

func NewAccountProfile(a account.Account) AccountProfile {
	return AccountProfile{
		ID:              int64(a.ID),
		FirstName:       a.FirstName,
		PaternalSurname: a.PaternalSurname,
		MaternalSurname: a.MaternalSurname,
		DNI:             string(a.DNI),
		Email:           string(a.Email),
	}
}

type ContactDetails struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}
