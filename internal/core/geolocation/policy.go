// Package geolocation describes how the browser client should query the
// device's position: the options for each attempt and when a failed attempt
// may be retried.
package geolocation

import (
	"fmt"
	"time"
)

// ErrorCode mirrors the browser's GeolocationPositionError codes.
type ErrorCode int

const (
	PermissionDenied    ErrorCode = 1
	PositionUnavailable ErrorCode = 2
	Timeout             ErrorCode = 3
)

// IsTimeout reports whether the failure is timeout-class and therefore retryable.
func (c ErrorCode) IsTimeout() bool {
	return c == Timeout
}

// Options are the PositionOptions passed to getCurrentPosition.
type Options struct {
	Timeout            time.Duration
	MaximumAge         time.Duration
	EnableHighAccuracy bool
}

// BrowserOptions is Options in the browser's wire shape (milliseconds).
type BrowserOptions struct {
	Timeout            int64 `json:"timeout"`
	MaximumAge         int64 `json:"maximumAge"`
	EnableHighAccuracy bool  `json:"enableHighAccuracy"`
}

// Browser converts the options to the browser's millisecond representation.
func (o Options) Browser() BrowserOptions {
	return BrowserOptions{
		Timeout:            o.Timeout.Milliseconds(),
		MaximumAge:         o.MaximumAge.Milliseconds(),
		EnableHighAccuracy: o.EnableHighAccuracy,
	}
}

// Messages shown to the user when detection gives up.
const (
	MessageUnsupported    = "Geolocation is not supported by your browser. Please enter a city manually."
	MessageDenied         = "Unable to detect your location. Please check your browser permissions."
	MessageRetryExhausted = "Unable to detect your location. Please check your browser permissions and try again."
)

// Policy is the ordered list of attempts. The first attempt always runs; each
// later attempt runs only after a timeout of the previous one.
type Policy struct {
	Attempts []Options
}

// DefaultPolicy makes one attempt with a fresh position and, on timeout, one
// relaxed retry that accepts a cached position up to a minute old.
func DefaultPolicy() Policy {
	return NewPolicy(15*time.Second, 30*time.Second, time.Minute)
}

// NewPolicy builds the two-attempt policy from its timings.
func NewPolicy(firstTimeout, retryTimeout, retryMaxAge time.Duration) Policy {
	return Policy{
		Attempts: []Options{
			{Timeout: firstTimeout},
			{Timeout: retryTimeout, MaximumAge: retryMaxAge},
		},
	}
}

// Validate checks that the policy has at least one attempt with a positive timeout.
func (p Policy) Validate() error {
	if len(p.Attempts) == 0 {
		return fmt.Errorf("geolocation policy needs at least one attempt")
	}
	for i, attempt := range p.Attempts {
		if attempt.Timeout <= 0 {
			return fmt.Errorf("attempt %d: timeout must be positive", i+1)
		}
		if attempt.MaximumAge < 0 {
			return fmt.Errorf("attempt %d: maximum age cannot be negative", i+1)
		}
	}
	return nil
}

// First returns the options for the initial attempt.
func (p Policy) First() Options {
	if len(p.Attempts) == 0 {
		return Options{}
	}
	return p.Attempts[0]
}

// Next decides what happens after attempt (zero-based) failed with code. It
// returns the options for the next attempt, or ok=false with the message to
// show when detection is abandoned for the session.
func (p Policy) Next(attempt int, code ErrorCode) (next Options, message string, ok bool) {
	if !code.IsTimeout() {
		return Options{}, MessageDenied, false
	}
	if attempt+1 >= len(p.Attempts) {
		return Options{}, MessageRetryExhausted, false
	}
	return p.Attempts[attempt+1], "", true
}

// Document is the JSON published to the client.
type Document struct {
	Attempts []BrowserOptions  `json:"attempts"`
	Messages map[string]string `json:"messages"`
}

// Document renders the policy for the browser client.
func (p Policy) Document() Document {
	attempts := make([]BrowserOptions, 0, len(p.Attempts))
	for _, attempt := range p.Attempts {
		attempts = append(attempts, attempt.Browser())
	}
	return Document{
		Attempts: attempts,
		Messages: map[string]string{
			"unsupported":    MessageUnsupported,
			"denied":         MessageDenied,
			"retryExhausted": MessageRetryExhausted,
		},
	}
}
