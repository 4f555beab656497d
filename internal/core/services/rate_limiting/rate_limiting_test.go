package ratelimiting

import (
	"context"
	"testing"

	"enerbill/internal/core/domain/logging"
	ratelimiter "enerbill/internal/core/domain/rate_limiter"
	"enerbill/internal/core/services"

	"github.com/stretchr/testify/require"
)

type input struct {
	Key string
}

func (i input) GetRateLimitKey() string {
	return i.Key
}

type result struct {
	Value int
}

type innerService struct {
	RunCount int
}

func (s *innerService) Run(ctx context.Context, i input) (result, error) {
	s.RunCount++
	return result{Value: 42}, nil
}

func newService(allow bool) (services.Service[input, result], *innerService, *ratelimiter.FakeRateLimiter) {
	inner := &innerService{}
	limiter := ratelimiter.NewFakeRateLimiter(allow)
	limit := ratelimiter.Limit{Value: 3, Interval: ratelimiter.Hour}
	return WithRateLimiting[input, result](logging.NewFakeLogger(), limiter, limit, inner), inner, limiter
}

func TestAllowed(t *testing.T) {
	service, inner, limiter := newService(true)

	r, err := service.Run(context.Background(), input{Key: "some-key"})

	require.Nil(t, err)
	require.Equal(t, 42, r.Value)
	require.Equal(t, 1, inner.RunCount)
	require.Equal(t, []string{"some-key"}, limiter.CheckedKeys)
}

func TestNotAllowed(t *testing.T) {
	service, inner, _ := newService(false)

	_, err := service.Run(context.Background(), input{Key: "some-key"})

	require.ErrorIs(t, err, ratelimiter.ErrRateLimitExceeded)
	require.Equal(t, 0, inner.RunCount)
}
