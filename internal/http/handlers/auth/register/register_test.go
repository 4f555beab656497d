package register

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"enerbill/internal/core/domain/account"
	service "enerbill/internal/core/services/register_account"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Account = account.Account{ID: account.ID(1), Username: input.Username, DNI: input.DNI}
	return result, nil
}

const validBody = `{
	"firstName": "Juan",
	"paternalSurname": "Perez",
	"maternalSurname": "Quispe",
	"dni": "12345678",
	"email": "jperez@test.test",
	"phone": "987654321",
	"username": "jperez",
	"password": "secret-password"
}`

func TestRegisterHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		expectedStatus int
		serviceCalled  bool
	}{
		{
			id:             "valid",
			body:           validBody,
			expectedStatus: http.StatusCreated,
			serviceCalled:  true,
		},
		{
			id:             "invalid json",
			body:           "{",
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "dni too short",
			body:           strings.Replace(validBody, "12345678", "1234567", 1),
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "dni with letters",
			body:           strings.Replace(validBody, "12345678", "1234567a", 1),
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid email",
			body:           strings.Replace(validBody, "jperez@test.test", "not-an-email", 1),
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "phone too short",
			body:           strings.Replace(validBody, "987654321", "12345678", 1),
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "password too short",
			body:           strings.Replace(validBody, "secret-password", "12345", 1),
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/auth/register", strings.NewReader(testcase.body))
			require.Nil(t, err)

			stub := &stubService{}
			rr := httptest.NewRecorder()
			New(stub).ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			if testcase.serviceCalled {
				assert.NotNil(t, stub.input)
			} else {
				assert.Nil(t, stub.input)
			}
		})
	}
}

func TestRegisterHandlerConflict(t *testing.T) {
	req, err := http.NewRequest("POST", "/auth/register", strings.NewReader(validBody))
	require.Nil(t, err)

	stub := &stubService{err: account.NewConflictError(account.ConflictDNI)}
	rr := httptest.NewRecorder()
	New(stub).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "dni already registered")
}
