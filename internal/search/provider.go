// Package search implements the external lookup providers the item
// collections delegate to: one per category, each an HTTP JSON client,
// plus caching and tracing decorators.
package search

import (
	"fmt"
	"net/http"
	"time"

	"fete/internal/party"
)

// defaultTimeout bounds every provider request.
const defaultTimeout = 15 * time.Second

// Query carries the parameters of one provider lookup.
type Query struct {
	Text       string
	MaxResults int
}

// Key derives a stable cache key for the query within one category.
func (q Query) Key(category party.Category) string {
	return fmt.Sprintf("%s|%s|%d", category, q.Text, q.MaxResults)
}

// newHTTPClient returns the client providers share. A nil override
// yields a client with the default timeout.
func newHTTPClient(override *http.Client) *http.Client {
	if override != nil {
		return override
	}
	return &http.Client{Timeout: defaultTimeout}
}

// statusError turns a non-OK response into an explicit error.
func statusError(resp *http.Response) error {
	return fmt.Errorf("unexpected status %s", resp.Status)
}
