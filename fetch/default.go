package fetch

import (
	"context"
	"sync"
)

var (
	defaultMu     sync.RWMutex
	defaultClient *Client
)

// Default returns the shared client used by BasicFetch and FetchCSS,
// creating it from a zero Config on first use.
func Default() *Client {
	defaultMu.RLock()
	c := defaultClient
	defaultMu.RUnlock()
	if c != nil {
		return c
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultClient == nil {
		c, err := New(Config{})
		if err != nil {
			// A zero Config always validates.
			panic(err)
		}
		defaultClient = c
	}
	return defaultClient
}

// SetDefault replaces the shared client. A nil c resets it so the next
// Default call builds a fresh one.
func SetDefault(c *Client) {
	defaultMu.Lock()
	defaultClient = c
	defaultMu.Unlock()
}

// BasicFetch GETs url with the default client and decodes it as format,
// FormatJSON when omitted. See Client.Basic.
func BasicFetch(ctx context.Context, url string, format ...Format) (any, error) {
	f := FormatJSON
	if len(format) > 0 {
		f = format[0]
	}
	return Default().Basic(ctx, url, f)
}

// FetchCSS fetches and joins stylesheets with the default client. See
// Client.CSS.
func FetchCSS(ctx context.Context, urls []string) (string, error) {
	return Default().CSS(ctx, urls)
}
