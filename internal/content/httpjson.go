package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// errStatus marks a non-success HTTP status. Rate limiting (429) and
// server errors are all handled the same way: the source fails and the
// resolver falls through to the next tier.
type errStatus struct {
	status int
	url    string
}

func (e *errStatus) Error() string {
	return fmt.Sprintf("GET %s returned status %d", e.url, e.status)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

// getJSON performs an HTTP GET request and unmarshals the JSON response
// into the provided data structure.
func getJSON(ctx context.Context, client *http.Client, addr string, data interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &errStatus{status: resp.StatusCode, url: addr}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, data); err != nil {
		return fmt.Errorf("unexpected response from %s: %w", addr, err)
	}
	return nil
}
