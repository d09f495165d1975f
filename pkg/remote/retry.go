// Package remote implements clients of the story list API and the search API.
// Both share the retry policy defined here.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
)

// StatusError is returned for a non-2xx HTTP response
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.Code, e.URL)
}

// Retryable reports whether the status is worth another attempt
func (e *StatusError) Retryable() bool {
	return e.Code >= 500 || e.Code == http.StatusRequestTimeout || e.Code == http.StatusTooManyRequests
}

// errPermanent marks an attempt result which must not be retried
var errPermanent = errors.New("permanent failure")

// IsRetryable checks if the error is transient: transport failures, timeouts, 5xx, 408 and 429.
// Cancellation, other 4xx responses and malformed payloads are not retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, errPermanent) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Retryable()
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return false
	}

	return true
}

// ErrorMessage returns a short user-facing description of a remote failure
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) {
		return "Request cancelled."
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return "Request timeout. Please check your internet connection."
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Server error: %d", statusErr.Code)
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		return "Network error. Please check your internet connection."
	}

	return err.Error()
}

// Retryer runs remote calls with linear backoff, delay before retry n is Delay*n
type Retryer struct {
	MaxRetries int
	Delay      time.Duration
}

// Do calls fn until it succeeds, returns a non-retryable error or the attempts run out.
// Total attempts is MaxRetries+1.
func (r Retryer) Do(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	attempts := max(r.MaxRetries, 0) + 1
	rp := repeater.NewBackoff(attempts, r.Delay,
		repeater.WithBackoffType(repeater.BackoffLinear), repeater.WithJitter(0))

	attempt := 0
	var permanent error
	err := rp.Do(ctx, func() error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			permanent = err
			return fmt.Errorf("%w: %w", errPermanent, err)
		}
		if attempt < attempts {
			lgr.Printf("[DEBUG] retrying %s, attempt %d of %d: %v", name, attempt+1, attempts, err)
		}
		return err
	}, errPermanent)

	if permanent != nil {
		return permanent
	}
	if err != nil && ctx.Err() != nil {
		return fmt.Errorf("%s: %w", name, ctx.Err())
	}
	return err
}
