package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, KindNone},
		{"auth", &ErrUnauthorized{Err: errors.New("401")}, KindAuthError},
		{"rate limit", &ErrRateLimit{Err: errors.New("429")}, KindRateLimited},
		{"server error", &ErrProviderUnavailable{Status: 503, Err: errors.New("503")}, KindServerError},
		{"connection", &ErrProviderUnavailable{Err: errors.New("refused")}, KindConnection},
		{"timeout", &ErrProviderUnavailable{Err: context.DeadlineExceeded}, KindTimeout},
		{"malformed", &ErrInvalidResponse{Err: errors.New("bad json")}, KindMalformed},
		{"truncated", &ErrMaxTokensExceeded{}, KindMalformed},
		{"exhausted keeps final kind", &ErrAttemptsExhausted{Attempts: 3, Kind: KindRateLimited, Err: errors.New("429")}, KindRateLimited},
		{"wrapped", fmt.Errorf("generate: %w", &ErrUnauthorized{Err: errors.New("401")}), KindAuthError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.want {
				t.Fatalf("KindOf(%v) = %s, want %s", tc.err, got, tc.want)
			}
		})
	}
}

func TestErrorsUnwrap(t *testing.T) {
	inner := errors.New("boom")
	wrapped := []error{
		&ErrUnauthorized{Err: inner},
		&ErrRateLimit{Err: inner},
		&ErrInvalidResponse{Err: inner},
		&ErrProviderUnavailable{Err: inner},
		&ErrAttemptsExhausted{Attempts: 3, Err: inner},
	}
	for _, err := range wrapped {
		if !errors.Is(err, inner) {
			t.Fatalf("%T does not unwrap to inner error", err)
		}
	}
}
