// Package external provides adapters for external services
// These adapters implement ports for the weather provider and the IP locator.
package external

import (
	"net/http"
	"time"
)

const defaultRequestTimeout = 10 * time.Second

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func timeoutOrDefault(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return defaultRequestTimeout
	}
	return timeout
}
