// Package xerrors defines the error taxonomy used across the
// classification engine, per the propagation policy: InvalidInput and
// Configuration errors surface immediately, Network and RateLimit
// errors are retried by the caller's request layer and only surface on
// exhaustion, and Upstream errors are never retried.
package xerrors

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Wrap these with fmt.Errorf("...: %w", ErrX) and test
// with errors.Is, never compare error strings.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrConfiguration = errors.New("invalid configuration")
	ErrNetwork       = errors.New("network failure")
	ErrRateLimit     = errors.New("rate limited")
	ErrUpstream      = errors.New("upstream failure")
)

// InvalidInput wraps ErrInvalidInput with context.
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidInput)...)
}

// Configuration wraps ErrConfiguration with context.
func Configuration(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrConfiguration)...)
}

// Network wraps ErrNetwork with context.
func Network(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNetwork)...)
}

// RateLimit wraps ErrRateLimit with context.
func RateLimit(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrRateLimit)...)
}

// Upstream wraps ErrUpstream with context.
func Upstream(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrUpstream)...)
}

// Retryable reports whether an error's kind should be retried by the
// request layer (Network, RateLimit) as opposed to surfaced
// immediately (InvalidInput, Configuration, Upstream).
func Retryable(err error) bool {
	return errors.Is(err, ErrNetwork) || errors.Is(err, ErrRateLimit)
}
