package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"time"
)

// ErrUnauthorized indicates the provider rejected our credentials (401).
// Fatal: retrying with the same key cannot succeed.
type ErrUnauthorized struct {
	Err error
}

func (e *ErrUnauthorized) Error() string {
	return fmt.Sprintf("provider rejected credentials: %v", e.Err)
}

func (e *ErrUnauthorized) Unwrap() error { return e.Err }

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the model returned content that does not
// conform to the requested schema. Content carries the raw body so the
// recovery layer can attempt extraction.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable
// (5xx, connection failure, or an unclassified transport error).
type ErrProviderUnavailable struct {
	Status int // HTTP status when known, 0 otherwise
	Err    error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider unavailable: %v", e.Err)
	}
	return "provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "model response truncated: max tokens exceeded"
}

// ErrAttemptsExhausted is the terminal failure returned after the retry
// layer has used up its attempt budget. It carries the final attempt so
// callers can report what ultimately went wrong.
type ErrAttemptsExhausted struct {
	Attempts int
	Kind     ErrorKind
	Err      error
}

func (e *ErrAttemptsExhausted) Error() string {
	return fmt.Sprintf("all %d attempts failed (%s): %v", e.Attempts, e.Kind, e.Err)
}

func (e *ErrAttemptsExhausted) Unwrap() error { return e.Err }

// ErrorKind classifies a generation failure for retry decisions and
// attempt records.
type ErrorKind string

const (
	KindNone        ErrorKind = "none"
	KindTimeout     ErrorKind = "timeout"
	KindConnection  ErrorKind = "connection"
	KindRateLimited ErrorKind = "rate_limited"
	KindServerError ErrorKind = "server_error"
	KindAuthError   ErrorKind = "auth_error"
	KindMalformed   ErrorKind = "malformed_response"
)

// KindOf maps an error from a provider into the failure taxonomy.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	var exhausted *ErrAttemptsExhausted
	if errors.As(err, &exhausted) {
		return exhausted.Kind
	}

	var auth *ErrUnauthorized
	if errors.As(err, &auth) {
		return KindAuthError
	}
	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return KindRateLimited
	}
	var inv *ErrInvalidResponse
	if errors.As(err, &inv) {
		return KindMalformed
	}
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return KindMalformed
	}
	var unavail *ErrProviderUnavailable
	if errors.As(err, &unavail) {
		if isTimeout(unavail.Err) {
			return KindTimeout
		}
		if unavail.Status >= 500 {
			return KindServerError
		}
		return KindConnection
	}

	if isTimeout(err) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindConnection
	}
	return KindServerError
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
