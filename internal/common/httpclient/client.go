// Package httpclient builds the HTTP client shared by the vendor adapters.
package httpclient

import (
	"net/http"
	"time"
)

// New returns a client without a global timeout. Deadlines come from the
// per-call context so a long generation is not cut off by transport config.
func New() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
