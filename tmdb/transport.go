package tmdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Media types sent in the Accept header
const (
	acceptJSON  = "application/json"
	acceptImage = "image/*"
)

// Transport issues a single GET. accept is the media type the caller
// expects, empty for any. It reports the status code and body of any
// response it receives; only connectivity failures are returned as errors.
// Timeouts and retries belong here, not in the client.
type Transport interface {
	Get(ctx context.Context, url, accept string) (status int, body []byte, err error)
}

// httpTransport is the default Transport over net/http
type httpTransport struct {
	client *http.Client
}

func newHTTPTransport(client *http.Client) *httpTransport {
	return &httpTransport{client: client}
}

// Get performs the request
func (t *httpTransport) Get(ctx context.Context, url, accept string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, body, nil
}
