package resetpassword

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"enerbill/internal/core/domain/account"
	service "enerbill/internal/core/services/reset_password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	return result, nil
}

const validBody = `{
	"dni": "12345678",
	"token": "6a0f2b9c4d8e1f3a5b7c9d0e2f4a6b8c0d1e2f3a",
	"password": "new-password"
}`

func TestResetPasswordHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		expectedStatus int
		serviceCalled  bool
	}{
		{
			id:             "valid",
			body:           validBody,
			expectedStatus: http.StatusOK,
			serviceCalled:  true,
		},
		{
			id:             "invalid json",
			body:           "{",
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing token",
			body:           `{"dni": "12345678", "password": "new-password"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "password too short",
			body:           strings.Replace(validBody, "new-password", "12345", 1),
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid dni",
			body:           strings.Replace(validBody, "12345678", "abc", 1),
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req, err := http.NewRequest("PUT", "/auth/password_reset", strings.NewReader(testcase.body))
			require.Nil(t, err)

			stub := &stubService{}
			rr := httptest.NewRecorder()
			New(stub).ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			if testcase.serviceCalled {
				assert.NotNil(t, stub.input)
			} else {
				// Rejected requests must never reach the service, so the
				// store stays untouched.
				assert.Nil(t, stub.input)
			}
		})
	}
}

func TestResetPasswordHandlerInvalidToken(t *testing.T) {
	req, err := http.NewRequest("PUT", "/auth/password_reset", strings.NewReader(validBody))
	require.Nil(t, err)

	stub := &stubService{err: account.ErrInvalidResetToken}
	rr := httptest.NewRecorder()
	New(stub).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid token")
}
